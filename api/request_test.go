package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shareplate/shareplate-api/api/mocks"
	"github.com/shareplate/shareplate-api/schema"
)

func TestCreateFoodRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSharePlate(ctl)
	s := Server{store: m, jwtSecret: testJWTSecret}

	newID := primitive.NewObjectID()
	m.EXPECT().CreateFoodRequest(schema.FoodRequest{
		FoodID:     "5e8bf47a0ff4f2d27df71bb5",
		UserEmail:  "b@y.com",
		FoodStatus: schema.FoodStatusRequested,
	}).Return(newID, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/requested-foods", s.authMiddleware(), s.createFoodRequest)

	body := `{"food_id":"5e8bf47a0ff4f2d27df71bb5","food_status":"Requested","user_email":"b@y.com"}`
	req := httptest.NewRequest("POST", "/requested-foods", strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: testToken(t, "b@y.com", time.Hour)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")
	assert.JSONEq(t, `{"inserted_id":"`+newID.Hex()+`"}`, w.Body.String())
}

func TestCreateFoodRequestDefaultStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSharePlate(ctl)
	s := Server{store: m, jwtSecret: testJWTSecret}

	newID := primitive.NewObjectID()
	m.EXPECT().CreateFoodRequest(schema.FoodRequest{
		FoodID:     "5e8bf47a0ff4f2d27df71bb5",
		UserEmail:  "b@y.com",
		FoodStatus: schema.FoodStatusRequested,
	}).Return(newID, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/requested-foods", s.authMiddleware(), s.createFoodRequest)

	body := `{"food_id":"5e8bf47a0ff4f2d27df71bb5","user_email":"b@y.com"}`
	req := httptest.NewRequest("POST", "/requested-foods", strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: testToken(t, "b@y.com", time.Hour)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")
}

func TestCreateFoodRequestRejectsOtherRequester(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSharePlate(ctl)
	s := Server{store: m, jwtSecret: testJWTSecret}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/requested-foods", s.authMiddleware(), s.createFoodRequest)

	body := `{"food_id":"5e8bf47a0ff4f2d27df71bb5","user_email":"b@y.com"}`
	req := httptest.NewRequest("POST", "/requested-foods", strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: testToken(t, "c@z.com", time.Hour)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestCreateFoodRequestRejectsMissingFoodID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSharePlate(ctl)
	s := Server{store: m, jwtSecret: testJWTSecret}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/requested-foods", s.authMiddleware(), s.createFoodRequest)

	body := `{"user_email":"b@y.com"}`
	req := httptest.NewRequest("POST", "/requested-foods", strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: testToken(t, "b@y.com", time.Hour)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestMyRequestedFoods(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSharePlate(ctl)
	s := Server{store: m, jwtSecret: testJWTSecret}

	requests := []schema.FoodRequest{
		{
			ID:         primitive.NewObjectID(),
			FoodID:     "5e8bf47a0ff4f2d27df71bb5",
			UserEmail:  "b@y.com",
			FoodStatus: schema.FoodStatusRequested,
		},
	}
	m.EXPECT().FoodRequestsByRequester("b@y.com").Return(requests, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/foods/my-requested-foods/:email", s.authMiddleware(), s.myRequestedFoods)

	req := httptest.NewRequest("GET", "/foods/my-requested-foods/b@y.com", nil)
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: testToken(t, "b@y.com", time.Hour)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp []schema.FoodRequest
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, requests, jResp, "wrong data")
}

func TestMyRequestedFoodsRejectsOtherRequester(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSharePlate(ctl)
	s := Server{store: m, jwtSecret: testJWTSecret}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/foods/my-requested-foods/:email", s.authMiddleware(), s.myRequestedFoods)

	req := httptest.NewRequest("GET", "/foods/my-requested-foods/b@y.com", nil)
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: testToken(t, "a@x.com", time.Hour)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}
