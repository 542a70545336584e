package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RequestedFoodCollection = "requestedFoods"
)

// FoodRequest is a user's claim against a food listing. FoodID references
// a document in the foods collection; the reference is not enforced by the
// store. FoodStatus carries the status the requester wants pushed onto the
// referenced food.
type FoodRequest struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodID          string             `bson:"food_id" json:"food_id"`
	FoodName        string             `bson:"food_name,omitempty" json:"food_name,omitempty"`
	FoodImage       string             `bson:"food_image,omitempty" json:"food_image,omitempty"`
	UserEmail       string             `bson:"user_email" json:"user_email"`
	RequestDate     string             `bson:"request_date,omitempty" json:"request_date,omitempty"`
	PickupLocation  string             `bson:"pickup_location,omitempty" json:"pickup_location,omitempty"`
	AdditionalNotes string             `bson:"additional_notes,omitempty" json:"additional_notes,omitempty"`
	DonatorName     string             `bson:"donator_name,omitempty" json:"donator_name,omitempty"`
	DonatorEmail    string             `bson:"donator_email,omitempty" json:"donator_email,omitempty"`
	FoodStatus      string             `bson:"food_status" json:"food_status"`
}
