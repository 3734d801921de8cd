package services

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Khushal2406/stayfit/models"
	"github.com/google/uuid"
)

const searchResultCap = 20

// StaticFoodDB serves lookups from a JSON array on local disk. The parsed
// dataset is held behind an atomic pointer: readers always see a complete
// snapshot, and a reload (triggered by a file modification-time change)
// swaps the whole snapshot in one store.
type StaticFoodDB struct {
	path     string
	mu       sync.Mutex   // serializes reloads
	snapshot atomic.Value // *datasetSnapshot
}

type datasetSnapshot struct {
	records []models.FoodRecord
	modTime time.Time
}

// datasetEntry mirrors the raw dataset shape. Nutrient values arrive as
// free text ("84 kj (20 kcal)"), so everything is a string here and gets
// parsed once at load.
type datasetEntry struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	FoodLink    string `json:"food_link"`
	ServingSize string `json:"serving_size"`
	Energy      string `json:"nutri_energy"`
	Protein     string `json:"nutri_protein"`
	Carbs       string `json:"nutri_carbohydrate"`
	Fat         string `json:"nutri_fat"`
	Fiber       string `json:"nutri_fiber"`
	Sugars      string `json:"nutri_sugars"`
}

func NewStaticFoodDB(path string) *StaticFoodDB {
	return &StaticFoodDB{path: path}
}

func (db *StaticFoodDB) Search(query string) ([]models.FoodRecord, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []models.FoodRecord{}, nil
	}

	records, err := db.load()
	if err != nil {
		return nil, err
	}

	results := make([]models.FoodRecord, 0, searchResultCap)
	for _, r := range records {
		if len(results) == searchResultCap {
			break
		}
		// Zero-calorie entries are incomplete data; keep them out of
		// suggestions.
		if r.Calories == 0 {
			continue
		}
		if strings.Contains(strings.ToLower(r.Name), query) ||
			strings.Contains(strings.ToLower(r.Brand), query) {
			results = append(results, r)
		}
	}
	return results, nil
}

func (db *StaticFoodDB) Get(nameOrID string) (*models.FoodRecord, error) {
	records, err := db.load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == nameOrID || strings.EqualFold(records[i].Name, nameOrID) {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrFoodNotFound, nameOrID)
}

// load returns the current snapshot, re-reading the file only when its
// modification time moved past the loaded one.
func (db *StaticFoodDB) load() ([]models.FoodRecord, error) {
	info, err := os.Stat(db.path)
	if err != nil {
		return nil, fmt.Errorf("stat food database: %w", err)
	}

	if snap, ok := db.snapshot.Load().(*datasetSnapshot); ok && snap.modTime.Equal(info.ModTime()) {
		return snap.records, nil
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	// Another request may have reloaded while we waited on the lock.
	if snap, ok := db.snapshot.Load().(*datasetSnapshot); ok && snap.modTime.Equal(info.ModTime()) {
		return snap.records, nil
	}

	data, err := os.ReadFile(db.path)
	if err != nil {
		return nil, fmt.Errorf("read food database: %w", err)
	}
	var entries []datasetEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse food database: %w", err)
	}

	records := make([]models.FoodRecord, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" && e.FoodLink == "" {
			continue
		}
		records = append(records, normalizeEntry(e))
	}

	db.snapshot.Store(&datasetSnapshot{records: records, modTime: info.ModTime()})
	return records, nil
}

func normalizeEntry(e datasetEntry) models.FoodRecord {
	id := e.FoodLink
	if id == "" {
		id = e.Name
	}
	if id == "" {
		id = uuid.NewString()
	}
	name := e.Name
	if name == "" {
		name = e.FoodLink
	}
	serving := e.ServingSize
	if serving == "" {
		serving = "Per 100g serving"
	}
	return models.FoodRecord{
		ID:          id,
		Name:        name,
		Brand:       e.Brand,
		ServingSize: serving,
		Calories:    parseEnergy(e.Energy),
		Protein:     parseNutrient(e.Protein),
		Carbs:       parseNutrient(e.Carbs),
		Fat:         parseNutrient(e.Fat),
		Fiber:       parseNutrient(e.Fiber),
		Sugars:      parseNutrient(e.Sugars),
	}
}

var (
	numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	kcalRe   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*kcal`)
)

// parseEnergy prefers an explicit kcal token, so "84 kj (20 kcal)"
// yields 20 rather than 84.
func parseEnergy(s string) float64 {
	if m := kcalRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v
	}
	return parseNutrient(s)
}

// parseNutrient pulls the first numeric token out of free text, 0 when
// there is none.
func parseNutrient(s string) float64 {
	m := numberRe.FindString(s)
	if m == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(m, 64)
	return v
}
