package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	CartsCollection        *mongo.Collection
	BookingsCollection     *mongo.Collection
	TransactionsCollection *mongo.Collection
	WaiversCollection      *mongo.Collection
	ContactsCollection     *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "gulffloat"
	}

	ClientOptions := options.Client().ApplyURI(mongoURL)
	var err error
	Client, err = mongo.Connect(context.TODO(), ClientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	CartsCollection = Client.Database(dbName).Collection("carts")
	BookingsCollection = Client.Database(dbName).Collection("bookings")
	TransactionsCollection = Client.Database(dbName).Collection("payment_transactions")
	WaiversCollection = Client.Database(dbName).Collection("waivers")
	ContactsCollection = Client.Database(dbName).Collection("contacts")
}
