package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/pizza-order-api/internal/database"
	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/franciscosanchezn/pizza-order-api/internal/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalog(t *testing.T) (*gorm.DB, CatalogService) {
	db := setupTestDB(t)
	require.NoError(t, database.Seed(db, 10))
	return db, NewCatalogService(db, stock.NewLedger(db))
}

func pizzaByName(t *testing.T, db *gorm.DB, name string) models.Pizza {
	var p models.Pizza
	require.NoError(t, db.Where("name = ?", name).First(&p).Error)
	return p
}

func TestGetCatalog(t *testing.T) {
	_, svc := setupCatalog(t)

	entries, err := svc.GetCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 14)

	assert.Equal(t, "pizza", entries[0].Kind)
	assert.Equal(t, "Margherita", entries[0].Name)
	assert.Equal(t, "12.99", entries[0].Price.StringFixed(2))
	assert.True(t, entries[0].IsAvailable)
	assert.Equal(t, "extra", entries[len(entries)-1].Kind)
}

func TestListPizzasFilters(t *testing.T) {
	db, svc := setupCatalog(t)

	all, err := svc.ListPizzas(context.Background(), PizzaFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.NotEmpty(t, all[0].Ingredients)

	byName, err := svc.ListPizzas(context.Background(), PizzaFilter{Name: "Hawaiian"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Hawaiian", byName[0].Name)

	search, err := svc.ListPizzas(context.Background(), PizzaFilter{Search: "MOZZARELLA"})
	require.NoError(t, err)
	assert.Len(t, search, 3)

	hawaiian := pizzaByName(t, db, "Hawaiian")
	_, err = svc.SetDisabled(context.Background(), stock.Key{Kind: stock.KindPizza, ID: hawaiian.ID}, true)
	require.NoError(t, err)

	available, err := svc.ListPizzas(context.Background(), PizzaFilter{})
	require.NoError(t, err)
	assert.Len(t, available, 3)

	everything, err := svc.ListPizzas(context.Background(), PizzaFilter{IncludeUnavailable: true})
	require.NoError(t, err)
	assert.Len(t, everything, 4)
}

func TestGetPizzaByID(t *testing.T) {
	db, svc := setupCatalog(t)
	margherita := pizzaByName(t, db, "Margherita")

	detail, err := svc.GetPizzaByID(context.Background(), margherita.ID)
	require.NoError(t, err)
	assert.Equal(t, "Margherita", detail.Name)
	assert.Len(t, detail.Ingredients, 4)
	assert.Len(t, detail.AvailableExtras, 10)

	_, err = svc.GetPizzaByID(context.Background(), 999)
	requireKind(t, err, models.ErrPizzaNotFound)
}

func TestListExtrasHidesUnavailable(t *testing.T) {
	db, svc := setupCatalog(t)

	var bacon models.Extra
	require.NoError(t, db.Where("name = ?", "Bacon").First(&bacon).Error)
	require.NoError(t, stock.NewLedger(db).Reserve(context.Background(),
		stock.Key{Kind: stock.KindExtra, ID: bacon.ID}, 10))

	extras, err := svc.ListExtras(context.Background())
	require.NoError(t, err)
	assert.Len(t, extras, 9)
	for _, e := range extras {
		assert.NotEqual(t, "Bacon", e.Name)
	}

	ingredients, err := svc.ListIngredients(context.Background())
	require.NoError(t, err)
	assert.Len(t, ingredients, 12)
}

func TestRestockAndSetDisabled(t *testing.T) {
	db, svc := setupCatalog(t)
	margherita := pizzaByName(t, db, "Margherita")
	key := stock.Key{Kind: stock.KindPizza, ID: margherita.ID}

	level, err := svc.Restock(context.Background(), key, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, level.QuantityInStock)
	assert.True(t, level.IsAvailable)

	level, err = svc.SetDisabled(context.Background(), key, true)
	require.NoError(t, err)
	assert.False(t, level.IsAvailable)

	level, err = svc.SetDisabled(context.Background(), key, false)
	require.NoError(t, err)
	assert.True(t, level.IsAvailable)

	_, err = svc.Restock(context.Background(), key, 0)
	requireKind(t, err, models.ErrInvalidQuantity)

	_, err = svc.Restock(context.Background(), stock.Key{Kind: stock.KindExtra, ID: 999}, 1)
	requireKind(t, err, models.ErrItemNotFound)

	_, err = svc.SetDisabled(context.Background(), stock.Key{Kind: stock.KindPizza, ID: 999}, true)
	requireKind(t, err, models.ErrItemNotFound)
}
