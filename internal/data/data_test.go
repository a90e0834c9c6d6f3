package data

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"biomass-report/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runJSON = `{
  "teaModel": "GPO",
  "teaInputs": {"CapitalCost": 70000000, "Financing": {"EconomicLife": 2}},
  "frcsInputs": {"treatmentid": 4, "system": "Ground-Based Mech WT", "radius": 40},
  "distanceToNearestSubstation": 1.5,
  "teaResults": {"CurrentLAC": {"PresentWorth": [1, 2], "CurrentLACofEnergy": 0.1}},
  "yearlyResults": [
    {"year": 1, "totalFeedstock": 100, "totalFeedstockCost": 2000},
    {"year": 2, "totalFeedstock": 300, "totalFeedstockCost": 3000}
  ],
  "sensitivity": {"title": "LCOE", "series": [{"name": "Capital Cost", "points": [{"x": -10, "y": 0.09}, {"x": 10, "y": 0.11}]}]}
}`

func TestParseRun(t *testing.T) {
	doc, err := ParseRun([]byte(runJSON))
	require.NoError(t, err)

	assert.Equal(t, model.GenericPowerOnly, doc.Run.TeaModel)
	assert.Equal(t, 2, doc.Run.OperatingYears())
	assert.Equal(t, 70000000.0, doc.Run.TeaInputs.CapitalCost())
	assert.Len(t, doc.Run.YearlyResults, 2)
	require.NotNil(t, doc.Sensitivity)
	assert.Equal(t, "Capital Cost", doc.Sensitivity.Series[0].Name)
	assert.NotNil(t, doc.Chart())
}

func TestParseRun_NoSensitivity(t *testing.T) {
	doc, err := ParseRun([]byte(`{"teaModel": "CHP", "yearlyResults": []}`))
	require.NoError(t, err)
	assert.Nil(t, doc.Sensitivity)
	assert.Nil(t, doc.Chart())
}

func TestParseRun_Errors(t *testing.T) {
	_, err := ParseRun([]byte(`{"teaModel": "XYZ"}`))
	assert.ErrorIs(t, err, model.ErrUnknownFacilityType)

	_, err = ParseRun([]byte(`{`))
	assert.Error(t, err)
}

func TestLoadRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte(runJSON), 0o644))

	doc, err := LoadRun(path)
	require.NoError(t, err)
	assert.Equal(t, 4, doc.Run.FrcsInputs.TreatmentID)

	_, err = LoadRun(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestResultsClient_FetchRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/runs/abc":
			assert.Equal(t, "secret-key", r.Header.Get("x-api-key"))
			w.Write([]byte(runJSON))
		case "/runs/broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewResultsClient(srv.URL+"/", "secret-key")
	doc, err := c.FetchRun(context.Background(), "abc")
	require.NoError(t, err)
	assert.Len(t, doc.Run.YearlyResults, 2)

	_, err = c.FetchRun(context.Background(), "nope")
	var re *ResultsError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "RUN_NOT_FOUND", re.Code)

	_, err = c.FetchRun(context.Background(), "broken")
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusBadGateway, re.StatusCode)

	_, err = c.FetchRun(context.Background(), " ")
	assert.Error(t, err)

	_, err = NewResultsClient("", "").FetchRun(context.Background(), "abc")
	assert.True(t, errors.As(err, &re))
}

func TestWorkbookCache(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewWorkbookCache(time.Minute)
	c.now = func() time.Time { return now }

	key := CacheKey([]byte("run"), []byte("cfg"))
	assert.NotEqual(t, key, CacheKey([]byte("ru"), []byte("ncfg")))

	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Set(key, []byte("xlsx"))
	got, ok := c.Get(key)
	assert.True(t, ok)
	assert.Equal(t, []byte("xlsx"), got)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get(key)
	assert.False(t, ok)

	c.Set("other", []byte("y"))
	assert.Equal(t, 1, c.Len())

	var nilCache *WorkbookCache
	nilCache.Set(key, []byte("x"))
	_, ok = nilCache.Get(key)
	assert.False(t, ok)
}

func TestCacheFromEnv(t *testing.T) {
	t.Setenv("ENABLE_REPORT_CACHE", "")
	assert.Nil(t, CacheFromEnv())

	t.Setenv("ENABLE_REPORT_CACHE", "true")
	t.Setenv("REPORT_CACHE_TTL", "5m")
	c := CacheFromEnv()
	require.NotNil(t, c)
	assert.Equal(t, 5*time.Minute, c.ttl)
	assert.Len(t, CacheKey(), 64)
}
