package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/pizza-order-api/internal/database"
	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/franciscosanchezn/pizza-order-api/internal/stock"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	driver := flag.String("driver", "sqlite", "Database driver (postgres or sqlite)")
	path := flag.String("path", "pizza.sqlite", "SQLite database path")
	url := flag.String("url", "", "PostgreSQL connection URL")
	initialStock := flag.Int("stock", 20, "Units in stock for newly created pizzas and extras")
	restock := flag.Int("restock", 0, "Units to add to every existing pizza and extra")
	flag.Parse()

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: *driver, Path: *path, URL: *url})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}
	if err := database.Seed(db, *initialStock); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	if *restock > 0 {
		if err := restockAll(db, *restock); err != nil {
			log.Fatal("Failed to restock catalog:", err)
		}
	}

	printStock(db)
}

// restockAll adds units to every item through the ledger, so availability is recomputed
func restockAll(db *gorm.DB, quantity int) error {
	ledger := stock.NewLedger(db)
	ctx := context.Background()

	var pizzaIDs, extraIDs []uint
	if err := db.Model(&models.Pizza{}).Pluck("id", &pizzaIDs).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Extra{}).Pluck("id", &extraIDs).Error; err != nil {
		return err
	}
	for _, id := range pizzaIDs {
		if _, err := ledger.Restock(ctx, stock.Key{Kind: stock.KindPizza, ID: id}, quantity); err != nil {
			return err
		}
	}
	for _, id := range extraIDs {
		if _, err := ledger.Restock(ctx, stock.Key{Kind: stock.KindExtra, ID: id}, quantity); err != nil {
			return err
		}
	}
	fmt.Printf("Added %d units to %d pizzas and %d extras\n", quantity, len(pizzaIDs), len(extraIDs))
	return nil
}

func printStock(db *gorm.DB) {
	var pizzas []models.Pizza
	var extras []models.Extra
	db.Order("id").Find(&pizzas)
	db.Order("id").Find(&extras)

	fmt.Println("Pizzas:")
	for _, p := range pizzas {
		fmt.Printf("  %3d  %-20s %7s  stock=%-4d available=%v\n", p.ID, p.Name, p.BasePrice.StringFixed(2), p.QuantityInStock, p.IsAvailable)
	}
	fmt.Println("Extras:")
	for _, e := range extras {
		fmt.Printf("  %3d  %-20s %7s  stock=%-4d available=%v\n", e.ID, e.Name, e.Price.StringFixed(2), e.QuantityInStock, e.IsAvailable)
	}
}
