package models

// FoodRecord is reference nutrition data resolved from the static dataset
// or the external provider. Values are per 100 g unless ServingSize says
// otherwise. FoodRecords are not persisted; meals store snapshots instead.
type FoodRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	ServingSize string  `json:"serving_size"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugars      float64 `json:"sugars"`
}
