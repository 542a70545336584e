package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shareplate/shareplate-api/schema"
)

// createFoodRequest inserts a new food request record. The store follows up
// by pushing the request's food_status onto the referenced food record; the
// response reflects the insert alone.
func (s *Server) createFoodRequest(c *gin.Context) {
	var params struct {
		FoodID          string `json:"food_id" binding:"required"`
		FoodName        string `json:"food_name"`
		FoodImage       string `json:"food_image"`
		UserEmail       string `json:"user_email" binding:"required,email"`
		RequestDate     string `json:"request_date"`
		PickupLocation  string `json:"pickup_location"`
		AdditionalNotes string `json:"additional_notes"`
		DonatorName     string `json:"donator_name"`
		DonatorEmail    string `json:"donator_email"`
		FoodStatus      string `json:"food_status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !requireRequester(c, params.UserEmail) {
		return
	}

	if params.FoodStatus == "" {
		params.FoodStatus = schema.FoodStatusRequested
	}

	id, err := s.store.CreateFoodRequest(schema.FoodRequest{
		FoodID:          params.FoodID,
		FoodName:        params.FoodName,
		FoodImage:       params.FoodImage,
		UserEmail:       params.UserEmail,
		RequestDate:     params.RequestDate,
		PickupLocation:  params.PickupLocation,
		AdditionalNotes: params.AdditionalNotes,
		DonatorName:     params.DonatorName,
		DonatorEmail:    params.DonatorEmail,
		FoodStatus:      params.FoodStatus,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorStoreUnavailable, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"inserted_id": id.Hex()})
}

// myRequestedFoods returns the food request records made by the requester
func (s *Server) myRequestedFoods(c *gin.Context) {
	email := c.Param("email")
	if !requireRequester(c, email) {
		return
	}

	requests, err := s.store.FoodRequestsByRequester(email)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorStoreUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}
