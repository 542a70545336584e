package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexFoodCollection())
	panicIfError(m.IndexRequestedFoodCollection())
}

func (m *MongoDBIndexer) IndexFoodCollection() error {
	if err := m.createIndex(FoodCollection, mongo.IndexModel{
		Keys: bson.M{
			"food_status": 1,
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(FoodCollection, mongo.IndexModel{
		Keys: bson.M{
			"donator_details.email": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(FoodCollection, mongo.IndexModel{
		Keys: bson.M{
			"food_name": 1,
		},
		Options: options.Index().SetCollation(&options.Collation{
			Locale:   "en",
			Strength: 2,
		}),
	})
}

func (m *MongoDBIndexer) IndexRequestedFoodCollection() error {
	if err := m.createIndex(RequestedFoodCollection, mongo.IndexModel{
		Keys: bson.M{
			"user_email": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(RequestedFoodCollection, mongo.IndexModel{
		Keys: bson.M{
			"food_id": 1,
		},
	})
}
