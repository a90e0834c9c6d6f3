package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"biomass-report/internal/api/middleware"
	"biomass-report/internal/api/models"
	"biomass-report/internal/config"
	"biomass-report/internal/data"
	"biomass-report/internal/model"
	"biomass-report/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(results *data.ResultsClient, cache *data.WorkbookCache) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	rh := NewReportHandler(config.Default().Report, results, cache)
	ref := NewReferenceHandler()
	api := r.Group("/api/v1")
	api.POST("/report", rh.Report)
	api.POST("/summary", rh.Summary)
	api.GET("/treatments", ref.ListTreatments)
	api.GET("/assumptions", ref.ListAssumptions)
	api.GET("/presets/:model", ref.GetPreset)
	return r
}

func runDoc(t *testing.T, years int, withChart bool) json.RawMessage {
	t.Helper()
	in := model.NewGenericPowerOnlyInputs()
	in.Financing.EconomicLife = 3
	run := model.AllYearsResults{
		TeaModel:   model.GenericPowerOnly,
		TeaInputs:  in,
		FrcsInputs: model.FrcsInputs{TreatmentID: 1},
	}
	for i := 0; i < years; i++ {
		run.YearlyResults = append(run.YearlyResults, model.YearlyResult{Year: i + 1, TotalFeedstock: 100, TotalFeedstockCost: 2000})
	}
	raw, err := json.Marshal(run)
	require.NoError(t, err)
	if !withChart {
		return raw
	}
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	doc["sensitivity"] = map[string]any{
		"series": []any{map[string]any{"name": "Capital Cost", "points": []any{
			map[string]any{"x": -10, "y": 0.1}, map[string]any{"x": 10, "y": 0.2},
		}}},
	}
	raw, err = json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func post(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorDetail {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestReport_ReturnsWorkbook(t *testing.T) {
	r := newRouter(nil, nil)
	w := post(t, r, "/api/v1/report", models.ReportRequest{Run: runDoc(t, 3, true)})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=cecdata.xlsx", w.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	got, err := f.GetCellValue(report.SheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Technical Performance", got)

	pics, err := f.GetPictures(report.SheetName, "B75")
	require.NoError(t, err)
	assert.Len(t, pics, 1)
}

func TestReport_NoChartOption(t *testing.T) {
	r := newRouter(nil, nil)
	w := post(t, r, "/api/v1/report", models.ReportRequest{
		Run:     runDoc(t, 3, true),
		Options: models.ReportOptions{NoChart: true},
	})
	require.Equal(t, http.StatusOK, w.Code)

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	pics, err := f.GetPictures(report.SheetName, "B75")
	require.NoError(t, err)
	assert.Empty(t, pics)
}

func TestReport_IncompleteRun(t *testing.T) {
	r := newRouter(nil, nil)
	w := post(t, r, "/api/v1/report", models.ReportRequest{Run: runDoc(t, 2, false)})

	require.Equal(t, http.StatusConflict, w.Code)
	e := decodeError(t, w)
	assert.Equal(t, "RUN_INCOMPLETE", e.Code)
	assert.EqualValues(t, 2, e.Details["have_years"])
	assert.EqualValues(t, 3, e.Details["want_years"])
}

func TestReport_YearsOverride(t *testing.T) {
	r := newRouter(nil, nil)
	w := post(t, r, "/api/v1/summary", models.ReportRequest{
		Run:     runDoc(t, 2, false),
		Options: models.ReportOptions{YearsToRun: 2},
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReport_BadRequests(t *testing.T) {
	r := newRouter(nil, nil)

	w := post(t, r, "/api/v1/report", models.ReportRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)

	w = post(t, r, "/api/v1/report", models.ReportRequest{Run: json.RawMessage(`{"teaModel":"XYZ"}`)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_RUN", decodeError(t, w).Code)

	w = post(t, r, "/api/v1/report", models.ReportRequest{RunID: "abc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "RESULTS_SERVICE_UNAVAILABLE", decodeError(t, w).Code)

	w = post(t, r, "/api/v1/report", models.ReportRequest{Run: runDoc(t, 3, false), Options: models.ReportOptions{YearsToRun: -1}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReport_FromResultsService(t *testing.T) {
	doc := runDoc(t, 3, false)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/runs/run-1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write(doc)
	}))
	defer srv.Close()

	r := newRouter(data.NewResultsClient(srv.URL, ""), nil)
	w := post(t, r, "/api/v1/report", models.ReportRequest{RunID: "run-1"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = post(t, r, "/api/v1/report", models.ReportRequest{RunID: "run-2"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RUN_NOT_FOUND", decodeError(t, w).Code)
}

func TestReport_Cache(t *testing.T) {
	cache := data.NewWorkbookCache(time.Hour)
	r := newRouter(nil, cache)
	body := models.ReportRequest{Run: runDoc(t, 3, false)}

	first := post(t, r, "/api/v1/report", body)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, cache.Len())

	second := post(t, r, "/api/v1/report", body)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
	assert.Equal(t, 1, cache.Len())
}

func TestSummary(t *testing.T) {
	r := newRouter(nil, nil)
	w := post(t, r, "/api/v1/summary", models.ReportRequest{Run: runDoc(t, 3, true)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GPO", resp.TeaModel)
	assert.Equal(t, "Generic Power Only", resp.FacilityType)
	assert.Equal(t, 3, resp.OperatingYears)
	assert.Len(t, resp.Sections, 9)
	assert.NotEmpty(t, resp.RequestID)
	assert.NotEmpty(t, resp.Escalation)

	te := resp.Sections[5].Tables[0]
	assert.Equal(t, "technoeconomic", te.Name)
	assert.Equal(t, "$20.00", te.Rows[0][2])
}

func TestReferenceEndpoints(t *testing.T) {
	r := newRouter(nil, nil)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	w := get("/api/v1/treatments")
	require.Equal(t, http.StatusOK, w.Code)
	var tr models.TreatmentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tr))
	assert.Len(t, tr.Treatments, 10)

	w = get("/api/v1/assumptions")
	require.Equal(t, http.StatusOK, w.Code)
	var ar models.AssumptionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ar))
	assert.Len(t, ar.Assumptions, 18)

	w = get("/api/v1/presets/gp")
	require.Equal(t, http.StatusOK, w.Code)
	var pr struct {
		Model  string         `json:"model"`
		Inputs map[string]any `json:"inputs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pr))
	assert.Equal(t, "GP", pr.Model)
	assert.Contains(t, pr.Inputs, "CapitalCost")

	w = get("/api/v1/presets/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "UNKNOWN_MODEL", decodeError(t, w).Code)
}

func TestErrorHandlerRecovers(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	e := decodeError(t, w)
	assert.Equal(t, "INTERNAL_ERROR", e.Code)
	assert.Equal(t, "boom", e.Message)
}
