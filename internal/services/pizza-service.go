package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"github.com/franciscosanchezn/pizza-order-api/internal/stock"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PizzaFilter narrows ListPizzas.
type PizzaFilter struct {
	// Name matches the pizza name exactly.
	Name string
	// Search is a case-insensitive substring match on name or description.
	Search string
	// IncludeUnavailable also returns pizzas that are out of stock or disabled.
	IncludeUnavailable bool
}

// PizzaDetail is a pizza together with the extras that can currently be ordered with it.
type PizzaDetail struct {
	models.Pizza
	AvailableExtras []models.Extra `json:"available_extras"`
}

// CatalogService provides read access to the catalog and the stock admin operations
type CatalogService interface {
	// GetCatalog lists every pizza and extra with its current availability
	GetCatalog(ctx context.Context) ([]models.CatalogEntry, error)
	// ListPizzas retrieves pizzas matching the filter
	ListPizzas(ctx context.Context, filter PizzaFilter) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza with its ingredients and available extras
	GetPizzaByID(ctx context.Context, id uint) (*PizzaDetail, error)
	// ListExtras retrieves the extras that are currently available
	ListExtras(ctx context.Context) ([]models.Extra, error)
	// ListIngredients retrieves all ingredients
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	// Restock adds units to a pizza or extra
	Restock(ctx context.Context, key stock.Key, quantity int) (stock.Level, error)
	// SetDisabled withdraws an item from sale or returns it
	SetDisabled(ctx context.Context, key stock.Key, disabled bool) (stock.Level, error)
}

// catalogService is the implementation of the CatalogService interface
type catalogService struct {
	db     *gorm.DB
	ledger *stock.Ledger
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(db *gorm.DB, ledger *stock.Ledger) CatalogService {
	return &catalogService{db: db, ledger: ledger}
}

func (s *catalogService) GetCatalog(ctx context.Context) ([]models.CatalogEntry, error) {
	var pizzas []models.Pizza
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, persistenceFailure(err)
	}
	var extras []models.Extra
	if err := s.db.WithContext(ctx).Order("id").Find(&extras).Error; err != nil {
		return nil, persistenceFailure(err)
	}

	entries := make([]models.CatalogEntry, 0, len(pizzas)+len(extras))
	for _, p := range pizzas {
		entries = append(entries, models.CatalogEntry{
			Kind:        string(stock.KindPizza),
			ItemID:      p.ID,
			Name:        p.Name,
			Price:       p.UnitPrice(),
			IsAvailable: p.IsAvailable,
		})
	}
	for _, e := range extras {
		entries = append(entries, models.CatalogEntry{
			Kind:        string(stock.KindExtra),
			ItemID:      e.ID,
			Name:        e.Name,
			Price:       e.UnitPrice(),
			IsAvailable: e.IsAvailable,
		})
	}
	return entries, nil
}

func (s *catalogService) ListPizzas(ctx context.Context, filter PizzaFilter) ([]models.Pizza, error) {
	query := s.db.WithContext(ctx).Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("ingredients.name")
	})
	if !filter.IncludeUnavailable {
		query = query.Where("is_available = ?", true)
	}
	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}

	pizzas := []models.Pizza{}
	if err := query.Order("id").Find(&pizzas).Error; err != nil {
		return nil, persistenceFailure(err)
	}
	return pizzas, nil
}

func (s *catalogService) GetPizzaByID(ctx context.Context, id uint) (*PizzaDetail, error) {
	var pizza models.Pizza
	err := s.db.WithContext(ctx).Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("ingredients.name")
	}).First(&pizza, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newOrderError(models.ErrPizzaNotFound, fmt.Sprintf("pizza %d not found", id),
			map[string]interface{}{"pizza_id": id})
	}
	if err != nil {
		return nil, persistenceFailure(err)
	}

	extras, err := s.ListExtras(ctx)
	if err != nil {
		return nil, err
	}
	return &PizzaDetail{Pizza: pizza, AvailableExtras: extras}, nil
}

func (s *catalogService) ListExtras(ctx context.Context) ([]models.Extra, error) {
	extras := []models.Extra{}
	if err := s.db.WithContext(ctx).Where("is_available = ?", true).Order("id").Find(&extras).Error; err != nil {
		return nil, persistenceFailure(err)
	}
	return extras, nil
}

func (s *catalogService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	if err := s.db.WithContext(ctx).Order("name").Find(&ingredients).Error; err != nil {
		return nil, persistenceFailure(err)
	}
	return ingredients, nil
}

func (s *catalogService) Restock(ctx context.Context, key stock.Key, quantity int) (stock.Level, error) {
	if quantity < 1 {
		return stock.Level{}, newOrderError(models.ErrInvalidQuantity, "quantity must be at least 1",
			map[string]interface{}{"quantity": quantity})
	}
	level, err := s.ledger.Restock(ctx, key, quantity)
	if err != nil {
		return stock.Level{}, adminError(key, err)
	}
	log.WithFields(logrus.Fields{
		"item":     key.String(),
		"added":    quantity,
		"in_stock": level.QuantityInStock,
	}).Info("Item restocked")
	return level, nil
}

func (s *catalogService) SetDisabled(ctx context.Context, key stock.Key, disabled bool) (stock.Level, error) {
	level, err := s.ledger.SetDisabled(ctx, key, disabled)
	if err != nil {
		return stock.Level{}, adminError(key, err)
	}
	log.WithFields(logrus.Fields{
		"item":         key.String(),
		"disabled":     disabled,
		"is_available": level.IsAvailable,
	}).Info("Item availability changed")
	return level, nil
}

func adminError(key stock.Key, err error) error {
	if errors.Is(err, stock.ErrItemNotFound) {
		return newOrderError(models.ErrItemNotFound, fmt.Sprintf("%s %d does not exist", key.Kind, key.ID),
			map[string]interface{}{"kind": string(key.Kind), "item_id": key.ID})
	}
	return persistenceFailure(err)
}
