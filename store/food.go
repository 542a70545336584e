package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shareplate/shareplate-api/schema"
)

var (
	ErrFoodNotFound = fmt.Errorf("food not found")
)

// Sort modes accepted by ListFoods. The values are the literal strings the
// front-end sends as query parameters.
const (
	QuantitySortDescending = "Descending"
	DateSortLatest         = "Latest"
	DateSortOldest         = "Oldest"
)

// FoodQuery carries the optional listing parameters of GET /foods.
// A zero Limit means unbounded.
type FoodQuery struct {
	Status       string
	Search       string
	QuantitySort string
	DateSort     string
	Limit        int64
}

// Filter translates the query into a single filter document. A status
// filter and a name search combine into one document, so both conditions
// apply together.
func (q FoodQuery) Filter() bson.M {
	filter := bson.M{}
	if q.Status == schema.FoodStatusAvailable {
		filter["food_status"] = q.Status
	}
	if q.Search != "" {
		filter["food_name"] = bson.M{"$regex": q.Search, "$options": "i"}
	}
	return filter
}

// Sort translates the query into a sort specification. At most one key is
// produced: a requested date sort wins over a requested quantity sort.
func (q FoodQuery) Sort() bson.M {
	sort := bson.M{}
	if q.QuantitySort == QuantitySortDescending {
		sort = bson.M{"food_quantity": -1}
	}
	switch q.DateSort {
	case DateSortLatest:
		sort = bson.M{"expire_date": -1}
	case DateSortOldest:
		sort = bson.M{"expire_date": 1}
	}
	return sort
}

// FoodUpdateResult reports the outcome of an upsert on the food collection.
type FoodUpdateResult struct {
	MatchedCount  int64  `json:"matched_count"`
	ModifiedCount int64  `json:"modified_count"`
	UpsertedID    string `json:"upserted_id,omitempty"`
}

// Food - interface for food record operations
type Food interface {
	ListFoods(query FoodQuery) ([]schema.Food, error)
	GetFood(id primitive.ObjectID) (*schema.Food, error)
	FoodsByDonator(email string) ([]schema.Food, error)
	CreateFood(food schema.Food) (primitive.ObjectID, error)
	UpdateFood(id primitive.ObjectID, patch schema.FoodPatch) (*FoodUpdateResult, error)
	DeleteFood(id primitive.ObjectID) (int64, error)
}

// ListFoods returns food records matching the query filter, ordered by the
// query sort and truncated to the query limit when one is set.
func (m *mongoDB) ListFoods(query FoodQuery) ([]schema.Food, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FoodCollection)

	opts := options.Find().SetSort(query.Sort())
	if query.Limit > 0 {
		opts = opts.SetLimit(query.Limit)
	}

	cur, err := c.Find(ctx, query.Filter(), opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query foods with error: %s", err)
		return nil, err
	}

	foods := make([]schema.Food, 0)
	if err := cur.All(ctx, &foods); err != nil {
		return nil, err
	}

	return foods, nil
}

// GetFood finds a food record by id
func (m *mongoDB) GetFood(id primitive.ObjectID) (*schema.Food, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FoodCollection)

	var food schema.Food
	query := bson.M{"_id": id}
	if err := c.FindOne(ctx, query).Decode(&food); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	return &food, nil
}

// FoodsByDonator finds all food records listed under a donator email
func (m *mongoDB) FoodsByDonator(email string) ([]schema.Food, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FoodCollection)

	cur, err := c.Find(ctx, bson.M{"donator_details.email": email})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query foods of donator %s with error: %s", email, err)
		return nil, err
	}

	foods := make([]schema.Food, 0)
	if err := cur.All(ctx, &foods); err != nil {
		return nil, err
	}

	return foods, nil
}

// CreateFood inserts a new food record and returns the store-assigned id
func (m *mongoDB) CreateFood(food schema.Food) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FoodCollection)

	result, err := c.InsertOne(ctx, food)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

// UpdateFood set-merges the non-nil patch fields onto the food record with
// the given id, inserting a new record with that id when none exists.
func (m *mongoDB) UpdateFood(id primitive.ObjectID, patch schema.FoodPatch) (*FoodUpdateResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FoodCollection)

	query := bson.M{"_id": id}
	update := bson.M{"$set": patch}
	result, err := c.UpdateOne(ctx, query, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}

	updated := FoodUpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}
	if upsertedID, ok := result.UpsertedID.(primitive.ObjectID); ok {
		updated.UpsertedID = upsertedID.Hex()
	}

	return &updated, nil
}

// DeleteFood removes the food record with the given id. Deleting a missing
// id is not an error; the returned count is zero.
func (m *mongoDB) DeleteFood(id primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FoodCollection)

	result, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
