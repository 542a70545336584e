package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/shareplate/shareplate-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("shareplate")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("mongo.database", "sharePlate")
	viper.BindEnv("mongo.user", "DB_USER")
	viper.BindEnv("mongo.password", "DB_PASSWORD")
}

func main() {
	conn := viper.GetString("mongo.conn")
	if conn == "" {
		conn = fmt.Sprintf("mongodb+srv://%s:%s@cluster0.okheupy.mongodb.net/?retryWrites=true&w=majority",
			viper.GetString("mongo.user"), viper.GetString("mongo.password"))
	}

	schema.NewMongoDBIndexer(conn, viper.GetString("mongo.database")).IndexAll()

	fmt.Println("indexes created for", schema.FoodCollection, "and", schema.RequestedFoodCollection)
}
