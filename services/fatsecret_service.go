package services

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Khushal2406/stayfit/models"
)

// Detail lookups are cached in memory for a day; entries expire on read
// and are never swept proactively.
const nutritionCacheTTL = 24 * time.Hour

// FatSecretService delegates search and detail calls to the FatSecret
// platform API, signing each request with an OAuth1 HMAC-SHA1 signature.
type FatSecretService struct {
	consumerKey    string
	consumerSecret string
	baseURL        string
	client         *http.Client

	mu    sync.RWMutex
	cache map[string]cachedRecord
}

type cachedRecord struct {
	rec     models.FoodRecord
	expires time.Time
}

func NewFatSecretService() *FatSecretService {
	return &FatSecretService{
		consumerKey:    os.Getenv("FATSECRET_CLIENT_ID"),
		consumerSecret: os.Getenv("FATSECRET_CLIENT_SECRET"),
		baseURL:        "https://platform.fatsecret.com/rest/server.api",
		client:         &http.Client{Timeout: 10 * time.Second},
		cache:          make(map[string]cachedRecord),
	}
}

// foods.search returns nutrition folded into a description string:
// "Per 100g - Calories: 84kcal | Fat: 0.30g | Carbs: 18.30g | Protein: 1.10g"
var (
	descCaloriesRe = regexp.MustCompile(`(?i)calories:\s*(\d+(?:\.\d+)?)\s*kcal`)
	descProteinRe  = regexp.MustCompile(`(?i)protein:\s*(\d+(?:\.\d+)?)\s*g`)
	descCarbsRe    = regexp.MustCompile(`(?i)carbs:\s*(\d+(?:\.\d+)?)\s*g`)
	descFatRe      = regexp.MustCompile(`(?i)fat:\s*(\d+(?:\.\d+)?)\s*g`)
)

type searchResponse struct {
	Foods struct {
		Food json.RawMessage `json:"food"`
	} `json:"foods"`
}

type searchFood struct {
	FoodID      string `json:"food_id"`
	FoodName    string `json:"food_name"`
	BrandName   string `json:"brand_name"`
	Description string `json:"food_description"`
}

func (s *FatSecretService) Search(query string) ([]models.FoodRecord, error) {
	if strings.TrimSpace(query) == "" {
		return []models.FoodRecord{}, nil
	}

	body, err := s.call(url.Values{
		"method":            {"foods.search"},
		"search_expression": {query},
		"format":            {"json"},
		"max_results":       {strconv.Itoa(searchResultCap)},
	})
	if err != nil {
		return nil, err
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("parse foods.search response: %w", err)
	}
	if len(sr.Foods.Food) == 0 {
		return []models.FoodRecord{}, nil
	}

	// The API returns an object instead of an array for a single hit.
	var foods []searchFood
	if err := json.Unmarshal(sr.Foods.Food, &foods); err != nil {
		var single searchFood
		if err := json.Unmarshal(sr.Foods.Food, &single); err != nil {
			return nil, fmt.Errorf("parse foods.search hits: %w", err)
		}
		foods = []searchFood{single}
	}

	results := make([]models.FoodRecord, 0, len(foods))
	for _, f := range foods {
		results = append(results, models.FoodRecord{
			ID:          f.FoodID,
			Name:        f.FoodName,
			Brand:       f.BrandName,
			ServingSize: servingFromDescription(f.Description),
			Calories:    firstMatch(descCaloriesRe, f.Description),
			Protein:     firstMatch(descProteinRe, f.Description),
			Carbs:       firstMatch(descCarbsRe, f.Description),
			Fat:         firstMatch(descFatRe, f.Description),
		})
	}
	return results, nil
}

type foodGetResponse struct {
	Food struct {
		FoodName  string `json:"food_name"`
		BrandName string `json:"brand_name"`
		Servings  struct {
			Serving json.RawMessage `json:"serving"`
		} `json:"servings"`
	} `json:"food"`
}

type providerServing struct {
	Description  string `json:"serving_description"`
	Calories     string `json:"calories"`
	Protein      string `json:"protein"`
	Carbohydrate string `json:"carbohydrate"`
	Fat          string `json:"fat"`
	Fiber        string `json:"fiber"`
	Sugar        string `json:"sugar"`
}

func (s *FatSecretService) Get(foodID string) (*models.FoodRecord, error) {
	key := strings.ToLower(strings.TrimSpace(foodID))
	if rec, ok := s.cached(key); ok {
		return rec, nil
	}

	body, err := s.call(url.Values{
		"method":  {"food.get.v2"},
		"food_id": {foodID},
		"format":  {"json"},
	})
	if err != nil {
		return nil, err
	}

	var fr foodGetResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return nil, fmt.Errorf("parse food.get response: %w", err)
	}
	if fr.Food.FoodName == "" || len(fr.Food.Servings.Serving) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrFoodNotFound, foodID)
	}

	var servings []providerServing
	if err := json.Unmarshal(fr.Food.Servings.Serving, &servings); err != nil {
		var single providerServing
		if err := json.Unmarshal(fr.Food.Servings.Serving, &single); err != nil {
			return nil, fmt.Errorf("parse food.get servings: %w", err)
		}
		servings = []providerServing{single}
	}
	serving := servings[0]

	rec := models.FoodRecord{
		ID:          foodID,
		Name:        fr.Food.FoodName,
		Brand:       fr.Food.BrandName,
		ServingSize: serving.Description,
		Calories:    parseNutrient(serving.Calories),
		Protein:     parseNutrient(serving.Protein),
		Carbs:       parseNutrient(serving.Carbohydrate),
		Fat:         parseNutrient(serving.Fat),
		Fiber:       parseNutrient(serving.Fiber),
		Sugars:      parseNutrient(serving.Sugar),
	}
	if rec.ServingSize == "" {
		rec.ServingSize = "serving"
	}

	s.store(key, rec)
	return &rec, nil
}

func (s *FatSecretService) cached(key string) (*models.FoodRecord, bool) {
	s.mu.RLock()
	entry, ok := s.cache[key]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	rec := entry.rec
	return &rec, true
}

// store is last-write-wins: concurrent lookups of the same food both write
// the same canonical value, so the race is benign.
func (s *FatSecretService) store(key string, rec models.FoodRecord) {
	s.mu.Lock()
	s.cache[key] = cachedRecord{rec: rec, expires: time.Now().Add(nutritionCacheTTL)}
	s.mu.Unlock()
}

// call posts an OAuth1-signed form request and returns the raw body.
// Transport errors and non-200 statuses surface as ErrFoodUnavailable so
// callers can distinguish an outage from a miss.
func (s *FatSecretService) call(params url.Values) ([]byte, error) {
	params.Set("oauth_consumer_key", s.consumerKey)
	params.Set("oauth_signature_method", "HMAC-SHA1")
	params.Set("oauth_timestamp", strconv.FormatInt(time.Now().Unix(), 10))
	params.Set("oauth_nonce", nonce())
	params.Set("oauth_version", "1.0")
	params.Set("oauth_signature", s.sign("POST", s.baseURL, params))

	resp, err := s.client.PostForm(s.baseURL, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFoodUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrFoodUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrFoodUnavailable, resp.StatusCode, body)
	}
	return body, nil
}

// sign builds the OAuth1 signature base string (sorted percent-encoded
// parameters) and HMACs it with the consumer secret.
func (s *FatSecretService) sign(method, rawURL string, params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, v := range params[k] {
			pairs = append(pairs, percentEncode(k)+"="+percentEncode(v))
		}
	}
	baseString := strings.Join([]string{
		strings.ToUpper(method),
		percentEncode(rawURL),
		percentEncode(strings.Join(pairs, "&")),
	}, "&")

	mac := hmac.New(sha1.New, []byte(percentEncode(s.consumerSecret)+"&"))
	mac.Write([]byte(baseString))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func nonce() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return hex.EncodeToString(b)
}

func servingFromDescription(desc string) string {
	if i := strings.Index(desc, " - "); i > 0 {
		return desc[:i]
	}
	return "serving"
}

func firstMatch(re *regexp.Regexp, s string) float64 {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, _ := strconv.ParseFloat(m[1], 64)
	return v
}
