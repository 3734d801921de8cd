package services

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestFatSecret(handler http.HandlerFunc) (*FatSecretService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	svc := &FatSecretService{
		consumerKey:    "test-key",
		consumerSecret: "test-secret",
		baseURL:        srv.URL,
		client:         srv.Client(),
		cache:          make(map[string]cachedRecord),
	}
	return svc, srv
}

func TestFatSecretSearchParsesDescription(t *testing.T) {
	svc, srv := newTestFatSecret(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "foods.search", r.FormValue("method"))
		assert.NotEmpty(t, r.FormValue("oauth_signature"))
		fmt.Fprint(w, `{"foods":{"food":[
		  {"food_id":"33691","food_name":"Banana","brand_name":"",
		   "food_description":"Per 100g - Calories: 89kcal | Fat: 0.33g | Carbs: 22.84g | Protein: 1.09g"},
		  {"food_id":"35718","food_name":"Peanut Butter","brand_name":"NutCo",
		   "food_description":"Per 2 tbsp - Calories: 188kcal | Fat: 16.00g | Carbs: 6.30g | Protein: 8.00g"}
		]}}`)
	})
	defer srv.Close()

	results, err := svc.Search("banana")
	assert.NoError(t, err)
	if assert.Len(t, results, 2) {
		assert.Equal(t, "33691", results[0].ID)
		assert.Equal(t, "Banana", results[0].Name)
		assert.Equal(t, "Per 100g", results[0].ServingSize)
		assert.InDelta(t, 89, results[0].Calories, 1e-9)
		assert.InDelta(t, 1.09, results[0].Protein, 1e-9)
		assert.InDelta(t, 22.84, results[0].Carbs, 1e-9)
		assert.InDelta(t, 0.33, results[0].Fat, 1e-9)
		assert.Equal(t, "NutCo", results[1].Brand)
	}
}

func TestFatSecretSearchSingleHitObject(t *testing.T) {
	// A single hit comes back as an object, not a one-element array.
	svc, srv := newTestFatSecret(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"foods":{"food":
		  {"food_id":"1","food_name":"Durian","food_description":"Per 100g - Calories: 147kcal | Fat: 5.33g | Carbs: 27.09g | Protein: 1.47g"}
		}}`)
	})
	defer srv.Close()

	results, err := svc.Search("durian")
	assert.NoError(t, err)
	if assert.Len(t, results, 1) {
		assert.Equal(t, "Durian", results[0].Name)
		assert.InDelta(t, 147, results[0].Calories, 1e-9)
	}
}

func TestFatSecretSearchEmptyQuerySkipsCall(t *testing.T) {
	called := false
	svc, srv := newTestFatSecret(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer srv.Close()

	results, err := svc.Search("  ")
	assert.NoError(t, err)
	assert.Empty(t, results)
	assert.False(t, called)
}

func TestFatSecretUpstreamErrorIsUnavailable(t *testing.T) {
	svc, srv := newTestFatSecret(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := svc.Search("banana")
	assert.True(t, errors.Is(err, ErrFoodUnavailable))

	_, err = svc.Get("33691")
	assert.True(t, errors.Is(err, ErrFoodUnavailable))
}

func TestFatSecretGetMissingFoodIsNotFound(t *testing.T) {
	svc, srv := newTestFatSecret(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"food":null}`)
	})
	defer srv.Close()

	_, err := svc.Get("does-not-exist")
	assert.True(t, errors.Is(err, ErrFoodNotFound))
	assert.False(t, errors.Is(err, ErrFoodUnavailable))
}

func TestFatSecretGetCachesDetailLookups(t *testing.T) {
	calls := 0
	svc, srv := newTestFatSecret(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"food":{"food_name":"Banana","brand_name":"","servings":{"serving":[
		  {"serving_description":"100 g","calories":"89","protein":"1.09","carbohydrate":"22.84","fat":"0.33","fiber":"2.6","sugar":"12.23"}
		]}}}`)
	})
	defer srv.Close()

	first, err := svc.Get("33691")
	assert.NoError(t, err)
	assert.Equal(t, "Banana", first.Name)
	assert.InDelta(t, 89, first.Calories, 1e-9)
	assert.InDelta(t, 2.6, first.Fiber, 1e-9)

	second, err := svc.Get("33691")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestFatSecretCacheExpiresOnRead(t *testing.T) {
	calls := 0
	svc, srv := newTestFatSecret(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"food":{"food_name":"Banana","servings":{"serving":
		  {"serving_description":"100 g","calories":"89","protein":"1.09","carbohydrate":"22.84","fat":"0.33"}
		}}}`)
	})
	defer srv.Close()

	_, err := svc.Get("33691")
	assert.NoError(t, err)

	// Age the entry past its TTL; the next read treats it as a miss.
	svc.mu.Lock()
	entry := svc.cache["33691"]
	entry.expires = time.Now().Add(-time.Minute)
	svc.cache["33691"] = entry
	svc.mu.Unlock()

	_, err = svc.Get("33691")
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}
