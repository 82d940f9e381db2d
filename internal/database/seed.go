package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type pizzaSeed struct {
	Name        string
	Description string
	BasePrice   string
	ImageURL    string
	Ingredients []string
}

type extraSeed struct {
	Name  string
	Price string
}

var seedIngredients = []string{
	"Dough",
	"Tomato Sauce",
	"Mozzarella Cheese",
	"Fresh Basil",
	"Pepperoni Slices",
	"Mushrooms",
	"Cooked Ham",
	"Artichoke Hearts",
	"Black Olives",
	"Pineapple Chunks",
	"Onions",
	"Bell Peppers",
}

var seedPizzas = []pizzaSeed{
	{
		Name:        "Margherita",
		Description: "Classic pizza with tomato sauce, mozzarella, and fresh basil",
		BasePrice:   "12.99",
		ImageURL:    "https://example.com/margherita.jpg",
		Ingredients: []string{"Dough", "Tomato Sauce", "Mozzarella Cheese", "Fresh Basil"},
	},
	{
		Name:        "Pepperoni",
		Description: "Delicious pepperoni with mozzarella cheese and tomato sauce",
		BasePrice:   "15.99",
		ImageURL:    "https://example.com/pepperoni.jpg",
		Ingredients: []string{"Dough", "Tomato Sauce", "Mozzarella Cheese", "Pepperoni Slices"},
	},
	{
		Name:        "Quattro Stagioni",
		Description: "Four seasons pizza with mushrooms, ham, artichokes, and olives",
		BasePrice:   "18.99",
		ImageURL:    "https://example.com/quattro.jpg",
		Ingredients: []string{"Dough", "Tomato Sauce", "Mozzarella Cheese", "Mushrooms", "Cooked Ham", "Artichoke Hearts", "Black Olives"},
	},
	{
		Name:        "Hawaiian",
		Description: "Tropical pizza with ham, pineapple, and mozzarella",
		BasePrice:   "16.99",
		ImageURL:    "https://example.com/hawaiian.jpg",
		Ingredients: []string{"Dough", "Tomato Sauce", "Mozzarella Cheese", "Cooked Ham", "Pineapple Chunks"},
	},
}

var seedExtras = []extraSeed{
	{Name: "Extra Cheese", Price: "2.50"},
	{Name: "Pepperoni", Price: "3.00"},
	{Name: "Mushrooms", Price: "2.00"},
	{Name: "Olives", Price: "1.50"},
	{Name: "Bell Peppers", Price: "2.00"},
	{Name: "Onions", Price: "1.50"},
	{Name: "Ham", Price: "3.50"},
	{Name: "Sausage", Price: "3.00"},
	{Name: "Bacon", Price: "3.50"},
	{Name: "Anchovies", Price: "2.50"},
}

// Seed populates the sample catalog. Rows are matched by name, so running it
// again only fills in what is missing and resets pizza ingredient links.
// New pizzas and extras start with initialStock units.
func Seed(db *gorm.DB, initialStock int) error {
	log.Info("Seeding database with initial data")
	return db.Transaction(func(tx *gorm.DB) error {
		ingredients := make(map[string]models.Ingredient, len(seedIngredients))
		for _, name := range seedIngredients {
			ing := models.Ingredient{Name: name}
			if err := tx.Where(models.Ingredient{Name: name}).FirstOrCreate(&ing).Error; err != nil {
				return fmt.Errorf("seed ingredient %q: %w", name, err)
			}
			ingredients[name] = ing
		}

		for _, ps := range seedPizzas {
			pizza := models.Pizza{
				StockItem: models.StockItem{
					Name:            ps.Name,
					QuantityInStock: initialStock,
					IsAvailable:     initialStock > 0,
				},
				Description: ps.Description,
				BasePrice:   decimal.RequireFromString(ps.BasePrice),
				ImageURL:    ps.ImageURL,
			}
			res := tx.Where("name = ?", ps.Name).Attrs(pizza).FirstOrCreate(&pizza)
			if res.Error != nil {
				return fmt.Errorf("seed pizza %q: %w", ps.Name, res.Error)
			}

			links := make([]models.Ingredient, 0, len(ps.Ingredients))
			for _, name := range ps.Ingredients {
				ing, ok := ingredients[name]
				if !ok {
					log.WithFields(logrus.Fields{"pizza": ps.Name, "ingredient": name}).Warn("Ingredient not found, skipping")
					continue
				}
				links = append(links, ing)
			}
			if err := tx.Model(&pizza).Association("Ingredients").Replace(links); err != nil {
				return fmt.Errorf("seed pizza %q ingredients: %w", ps.Name, err)
			}
			log.WithFields(logrus.Fields{"pizza": ps.Name, "created": res.RowsAffected == 1}).Debug("Seeded pizza")
		}

		for _, es := range seedExtras {
			extra := models.Extra{
				StockItem: models.StockItem{
					Name:            es.Name,
					QuantityInStock: initialStock,
					IsAvailable:     initialStock > 0,
				},
				Price: decimal.RequireFromString(es.Price),
			}
			if err := tx.Where("name = ?", es.Name).Attrs(extra).FirstOrCreate(&extra).Error; err != nil {
				return fmt.Errorf("seed extra %q: %w", es.Name, err)
			}
		}

		log.Info("Database seeded successfully")
		return nil
	})
}
