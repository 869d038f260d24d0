// Command seed fills the transactions table with synthetic records for
// local development and demos.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"veristate/internal/config"
	"veristate/internal/models"
	"veristate/internal/repositories"

	"github.com/google/uuid"
)

var firstNames = []string{"Ada", "Bola", "Chidi", "Dayo", "Efe", "Femi", "Gbenga", "Halima", "Ifeoma", "Jide"}
var lastNames = []string{"Obi", "Ade", "Okafor", "Balogun", "Eze", "Igwe", "Mohammed", "Okoye", "Sanni", "Uche"}
var genders = []string{"Male", "Female"}

func main() {
	count := flag.Int("count", 1000, "number of transactions to generate")
	flag.Parse()

	config.LoadEnv()

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get database instance: %v", err)
	}
	defer sqlDB.Close()

	for i := 0; i < *count; i++ {
		tx := fakeTransaction()
		if err := db.Create(&tx).Error; err != nil {
			log.Fatalf("failed to insert transaction %d: %v", i, err)
		}
	}

	log.Printf("inserted %d synthetic transactions", *count)
}

func fakeTransaction() models.Transaction {
	return models.Transaction{
		Ref:            uuid.NewString(),
		BuyerName:      fakeName(),
		SellerName:     fakeName(),
		PropertyType:   models.PropertyTypes[rand.Intn(len(models.PropertyTypes))],
		PropertyValue:  50_000 + rand.Float64()*450_000,
		MortgageAmount: 10_000 + rand.Float64()*290_000,
		PropertyArea:   50 + rand.Float64()*950,
		PropertyLat:    -90 + rand.Float64()*180,
		PropertyLong:   -180 + rand.Float64()*360,
		BuyerLat:       -90 + rand.Float64()*180,
		BuyerLong:      -180 + rand.Float64()*360,
		Month:          1 + rand.Intn(12),
		BuyerGender:    genders[rand.Intn(len(genders))],
		SSNLast4:       fmt.Sprintf("%04d", rand.Intn(10000)),
		ProcessingDays: rand.Intn(60),
	}
}

func fakeName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}
