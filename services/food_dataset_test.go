package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const datasetV1 = `[
  {"name": "Chicken Breast", "brand": "FreshCo", "food_link": "chicken-breast",
   "nutri_energy": "492 kj (117 kcal)", "nutri_protein": "23.1 g",
   "nutri_carbohydrate": "0 g", "nutri_fat": "2.6 g", "nutri_fiber": "0 g"},
  {"name": "Chicken Soup", "food_link": "chicken-soup",
   "nutri_energy": "36 kcal", "nutri_protein": "2.5 g",
   "nutri_carbohydrate": "4.2 g", "nutri_fat": "1.1 g"},
  {"name": "Diet Water", "brand": "Chicken Springs", "nutri_energy": "0 kcal"},
  {"name": "Oat Bar", "brand": "GrainHouse", "food_link": "oat-bar",
   "nutri_energy": "1650 kj", "nutri_protein": "8 g",
   "nutri_carbohydrate": "55 g", "nutri_fat": "12 g"}
]`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foodinfo.json")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestStaticSearchCaseInsensitive(t *testing.T) {
	db := NewStaticFoodDB(writeDataset(t, datasetV1))

	lower, err := db.Search("chicken")
	assert.NoError(t, err)
	upper, err := db.Search("CHICKEN")
	assert.NoError(t, err)

	assert.Equal(t, lower, upper)
	// Breast, Soup, and the brand-matched Diet Water would be three hits,
	// but zero-calorie entries are dropped from suggestions.
	assert.Len(t, lower, 2)
}

func TestStaticSearchEmptyQuery(t *testing.T) {
	db := NewStaticFoodDB(writeDataset(t, datasetV1))

	results, err := db.Search("   ")
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestStaticSearchMatchesBrand(t *testing.T) {
	db := NewStaticFoodDB(writeDataset(t, datasetV1))

	results, err := db.Search("grainhouse")
	assert.NoError(t, err)
	if assert.Len(t, results, 1) {
		assert.Equal(t, "Oat Bar", results[0].Name)
	}
}

func TestStaticEnergyPrefersKcalToken(t *testing.T) {
	db := NewStaticFoodDB(writeDataset(t, datasetV1))

	rec, err := db.Get("chicken-breast")
	assert.NoError(t, err)
	// "492 kj (117 kcal)" must read 117, not 492.
	assert.InDelta(t, 117, rec.Calories, 1e-9)
	assert.InDelta(t, 23.1, rec.Protein, 1e-9)

	// kJ-only entries fall back to the first numeric token.
	bar, err := db.Get("oat-bar")
	assert.NoError(t, err)
	assert.InDelta(t, 1650, bar.Calories, 1e-9)
}

func TestStaticGetByNameCaseInsensitive(t *testing.T) {
	db := NewStaticFoodDB(writeDataset(t, datasetV1))

	rec, err := db.Get("chicken soup")
	assert.NoError(t, err)
	assert.Equal(t, "Chicken Soup", rec.Name)
}

func TestStaticGetNotFound(t *testing.T) {
	db := NewStaticFoodDB(writeDataset(t, datasetV1))

	_, err := db.Get("unobtainium")
	assert.True(t, errors.Is(err, ErrFoodNotFound))
}

func TestStaticReloadOnModTimeChange(t *testing.T) {
	path := writeDataset(t, datasetV1)
	db := NewStaticFoodDB(path)

	results, err := db.Search("quinoa")
	assert.NoError(t, err)
	assert.Empty(t, results)

	updated := `[{"name": "Quinoa Salad", "food_link": "quinoa-salad",
	  "nutri_energy": "120 kcal", "nutri_protein": "4 g"}]`
	assert.NoError(t, os.WriteFile(path, []byte(updated), 0644))
	// Force a visible mtime bump; some filesystems have coarse resolution.
	future := time.Now().Add(2 * time.Second)
	assert.NoError(t, os.Chtimes(path, future, future))

	results, err = db.Search("quinoa")
	assert.NoError(t, err)
	if assert.Len(t, results, 1) {
		assert.Equal(t, "Quinoa Salad", results[0].Name)
	}

	// Old entries are gone: the reload swapped the whole snapshot.
	_, err = db.Get("chicken-breast")
	assert.True(t, errors.Is(err, ErrFoodNotFound))
}

func TestParseNutrientDefaultsToZero(t *testing.T) {
	assert.InDelta(t, 0, parseNutrient(""), 1e-9)
	assert.InDelta(t, 0, parseNutrient("trace amounts"), 1e-9)
	assert.InDelta(t, 12.5, parseNutrient("12.5 g"), 1e-9)
	assert.InDelta(t, 0, parseEnergy(""), 1e-9)
}
