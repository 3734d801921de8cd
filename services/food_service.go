package services

import (
	"os"
	"sync"

	"github.com/Khushal2406/stayfit/models"
)

// FoodSource is the lookup contract both strategies implement: substring
// search capped at a fixed number of results, and exact retrieval by
// name or id. Search with an empty query returns an empty set, not an
// error; Get fails with ErrFoodNotFound when nothing matches.
type FoodSource interface {
	Search(query string) ([]models.FoodRecord, error)
	Get(nameOrID string) (*models.FoodRecord, error)
}

// FoodService fronts the configured lookup strategy.
type FoodService struct {
	src FoodSource
}

func NewFoodService(src FoodSource) *FoodService {
	return &FoodService{src: src}
}

func (s *FoodService) Search(query string) ([]models.FoodRecord, error) {
	return s.src.Search(query)
}

func (s *FoodService) Get(nameOrID string) (*models.FoodRecord, error) {
	return s.src.Get(nameOrID)
}

var (
	foodOnce sync.Once
	foodSvc  *FoodService
)

// DefaultFoodService resolves the lookup strategy from FOOD_SOURCE
// ("dataset" or "fatsecret") once per process, so the dataset snapshot
// and the provider nutrition cache are shared across requests.
func DefaultFoodService() *FoodService {
	foodOnce.Do(func() {
		switch os.Getenv("FOOD_SOURCE") {
		case "fatsecret":
			foodSvc = NewFoodService(NewFatSecretService())
		default:
			path := os.Getenv("FOOD_DATA_FILE")
			if path == "" {
				path = "foodinfo.json"
			}
			foodSvc = NewFoodService(NewStaticFoodDB(path))
		}
	})
	return foodSvc
}
