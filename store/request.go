package store

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shareplate/shareplate-api/schema"
)

var (
	ErrRequestedFoodMissing = fmt.Errorf("requested food does not exist")
)

// FoodRequest - interface for food request record operations
type FoodRequest interface {
	CreateFoodRequest(request schema.FoodRequest) (primitive.ObjectID, error)
	FoodRequestsByRequester(email string) ([]schema.FoodRequest, error)
}

// CreateFoodRequest inserts a new food request record, then pushes the
// request's food_status onto the referenced food record.
//
// The two writes are not wrapped in a transaction. When the status push
// fails, or the referenced food id is malformed or missing, the request
// record stays inserted and the inconsistency is logged and reported; the
// returned id reflects the insert alone. Concurrent requests against the
// same food record resolve last-writer-wins.
func (m *mongoDB) CreateFoodRequest(request schema.FoodRequest) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestedFoodCollection)

	result, err := c.InsertOne(ctx, request)
	if err != nil {
		return primitive.NilObjectID, err
	}
	requestID := result.InsertedID.(primitive.ObjectID)

	if err := m.syncFoodStatus(ctx, request.FoodID, request.FoodStatus); err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"request_id": requestID.Hex(),
			"food_id":    request.FoodID,
			"error":      err,
		}).Error("referential inconsistency: food request inserted without status sync")
		sentry.CaptureException(err)
	}

	return requestID, nil
}

// syncFoodStatus sets the status of the food record referenced by a newly
// inserted request.
func (m *mongoDB) syncFoodStatus(ctx context.Context, foodID, status string) error {
	id, err := primitive.ObjectIDFromHex(foodID)
	if err != nil {
		return fmt.Errorf("malformed food id %q: %s", foodID, err)
	}

	c := m.client.Database(m.database).Collection(schema.FoodCollection)

	query := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"food_status": status}}
	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRequestedFoodMissing
	}

	return nil
}

// FoodRequestsByRequester finds all food request records made under an email
func (m *mongoDB) FoodRequestsByRequester(email string) ([]schema.FoodRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestedFoodCollection)

	cur, err := c.Find(ctx, bson.M{"user_email": email})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query food requests of %s with error: %s", email, err)
		return nil, err
	}

	requests := make([]schema.FoodRequest, 0)
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}
