package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FoodCollection = "foods"
)

// Food statuses pushed around by donation and request flows.
const (
	FoodStatusAvailable = "Available"
	FoodStatusRequested = "Requested"
	FoodStatusDelivered = "Delivered"
)

// Food is a donation listing. Dates travel as ISO-8601 strings so that
// lexicographic order in the store matches chronological order.
type Food struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"food_name" json:"food_name"`
	Image           string             `bson:"food_image,omitempty" json:"food_image,omitempty"`
	Quantity        int                `bson:"food_quantity" json:"food_quantity"`
	PickupLocation  string             `bson:"pickup_location,omitempty" json:"pickup_location,omitempty"`
	ExpireDate      string             `bson:"expire_date" json:"expire_date"`
	AdditionalNotes string             `bson:"additional_notes,omitempty" json:"additional_notes,omitempty"`
	Status          string             `bson:"food_status" json:"food_status"`
	Donator         DonatorDetails     `bson:"donator_details" json:"donator_details"`
}

// DonatorDetails identifies the user who listed a donation.
type DonatorDetails struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email" json:"email"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// FoodPatch is a partial food document. Only non-nil fields are written
// by an update.
type FoodPatch struct {
	Name            *string         `bson:"food_name,omitempty" json:"food_name,omitempty"`
	Image           *string         `bson:"food_image,omitempty" json:"food_image,omitempty"`
	Quantity        *int            `bson:"food_quantity,omitempty" json:"food_quantity,omitempty"`
	PickupLocation  *string         `bson:"pickup_location,omitempty" json:"pickup_location,omitempty"`
	ExpireDate      *string         `bson:"expire_date,omitempty" json:"expire_date,omitempty"`
	AdditionalNotes *string         `bson:"additional_notes,omitempty" json:"additional_notes,omitempty"`
	Status          *string         `bson:"food_status,omitempty" json:"food_status,omitempty"`
	Donator         *DonatorDetails `bson:"donator_details,omitempty" json:"donator_details,omitempty"`
}
