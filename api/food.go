package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shareplate/shareplate-api/schema"
	"github.com/shareplate/shareplate-api/store"
)

// listFoods returns food records filtered, sorted and truncated by the
// optional query parameters status, search, quantity_sort, date_sort and
// limit.
func (s *Server) listFoods(c *gin.Context) {
	query := store.FoodQuery{
		Status:       c.Query("status"),
		Search:       c.Query("search"),
		QuantitySort: c.Query("quantity_sort"),
		DateSort:     c.Query("date_sort"),
	}

	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.ParseInt(limit, 10, 64)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		query.Limit = n
	}

	foods, err := s.store.ListFoods(query)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorStoreUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, foods)
}

// getFood returns a single food record by id
func (s *Server) getFood(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	food, err := s.store.GetFood(id)
	if err != nil {
		if err == store.ErrFoodNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorFoodNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorStoreUnavailable, err)
		}
		return
	}

	c.JSON(http.StatusOK, food)
}

// myFoods returns the food records listed by the requester
func (s *Server) myFoods(c *gin.Context) {
	email := c.Param("email")
	if !requireRequester(c, email) {
		return
	}

	foods, err := s.store.FoodsByDonator(email)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorStoreUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, foods)
}

// createFood inserts a new food record listed by the requester
func (s *Server) createFood(c *gin.Context) {
	var params struct {
		Name            string `json:"food_name" binding:"required"`
		Image           string `json:"food_image"`
		Quantity        int    `json:"food_quantity" binding:"required,min=1"`
		PickupLocation  string `json:"pickup_location"`
		ExpireDate      string `json:"expire_date" binding:"required"`
		AdditionalNotes string `json:"additional_notes"`
		Status          string `json:"food_status"`
		Donator         struct {
			Name  string `json:"name"`
			Email string `json:"email" binding:"required,email"`
			Image string `json:"image"`
		} `json:"donator_details"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !requireRequester(c, params.Donator.Email) {
		return
	}

	if params.Status == "" {
		params.Status = schema.FoodStatusAvailable
	}

	id, err := s.store.CreateFood(schema.Food{
		Name:            params.Name,
		Image:           params.Image,
		Quantity:        params.Quantity,
		PickupLocation:  params.PickupLocation,
		ExpireDate:      params.ExpireDate,
		AdditionalNotes: params.AdditionalNotes,
		Status:          params.Status,
		Donator: schema.DonatorDetails{
			Name:  params.Donator.Name,
			Email: params.Donator.Email,
			Image: params.Donator.Image,
		},
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorStoreUnavailable, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"inserted_id": id.Hex()})
}

// updateFood set-merges a partial food document onto the record with the
// given id, inserting a new record when the id is absent
func (s *Server) updateFood(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var patch schema.FoodPatch
	if err := c.BindJSON(&patch); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	result, err := s.store.UpdateFood(id, patch)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorStoreUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// deleteFood removes the food record with the given id
func (s *Server) deleteFood(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	deleted, err := s.store.DeleteFood(id)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorStoreUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted_count": deleted})
}
