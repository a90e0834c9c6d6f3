package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"biomass-report/internal/api/middleware"
	"biomass-report/internal/api/models"
	"biomass-report/internal/config"
	"biomass-report/internal/data"
	"biomass-report/internal/export"
	"biomass-report/internal/metrics"
	"biomass-report/internal/report"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler builds reports for completed runs.
type ReportHandler struct {
	cfg     config.ReportConfig
	results *data.ResultsClient
	cache   *data.WorkbookCache
}

// NewReportHandler creates a report handler. results and cache may be nil; without a
// results client only inline runs are accepted.
func NewReportHandler(cfg config.ReportConfig, results *data.ResultsClient, cache *data.WorkbookCache) *ReportHandler {
	return &ReportHandler{cfg: cfg, results: results, cache: cache}
}

// Report handles POST /api/v1/report and answers with the xlsx workbook.
func (h *ReportHandler) Report(c *gin.Context) {
	start := time.Now()
	req, ok := h.bind(c)
	if !ok {
		metrics.ReportsTotal.WithLabelValues("xlsx", "invalid").Inc()
		return
	}
	cfg := h.settings(req.Options)

	var key string
	if len(req.Run) > 0 {
		body, _ := c.Get(gin.BodyBytesKey)
		raw, _ := body.([]byte)
		key = data.CacheKey(raw, []byte(fmt.Sprintf("%+v", cfg)))
		if workbook, hit := h.cache.Get(key); hit {
			metrics.ReportsTotal.WithLabelValues("xlsx", "cached").Inc()
			h.sendWorkbook(c, cfg.FileName, workbook)
			return
		}
	}

	doc, ok := h.load(c, req)
	if !ok {
		metrics.ReportsTotal.WithLabelValues("xlsx", "invalid").Inc()
		return
	}

	builder := newBuilder(cfg)
	var ch report.Chart
	if !req.Options.NoChart {
		ch = doc.Chart()
	}
	layout, err := builder.Build(c.Request.Context(), doc.Run, ch)
	if err != nil {
		metrics.ReportsTotal.WithLabelValues("xlsx", "error").Inc()
		h.fail(c, http.StatusInternalServerError, "REPORT_BUILD_FAILED", err)
		return
	}
	if layout == nil {
		metrics.ReportsTotal.WithLabelValues("xlsx", "incomplete").Inc()
		incomplete(c, len(doc.Run.YearlyResults), builder.YearsFor(doc.Run))
		return
	}

	workbook, err := export.Render(layout)
	if err != nil {
		metrics.ReportsTotal.WithLabelValues("xlsx", "error").Inc()
		h.fail(c, http.StatusInternalServerError, "EXPORT_FAILED", err)
		return
	}
	if key != "" {
		h.cache.Set(key, workbook)
	}

	metrics.ReportsTotal.WithLabelValues("xlsx", "ok").Inc()
	metrics.BuildDurationSeconds.WithLabelValues("xlsx").Observe(time.Since(start).Seconds())
	metrics.WorkbookBytes.Observe(float64(len(workbook)))
	metrics.OperatingYears.Set(float64(len(doc.Run.YearlyResults)))

	log.WithFields(log.Fields{
		"request_id": c.GetString(middleware.RequestIDKey),
		"model":      doc.Run.TeaModel,
		"years":      len(doc.Run.YearlyResults),
		"images":     len(layout.Images),
		"bytes":      len(workbook),
	}).Info("report built")
	h.sendWorkbook(c, cfg.FileName, workbook)
}

// Summary handles POST /api/v1/summary and answers with the formatted sections.
func (h *ReportHandler) Summary(c *gin.Context) {
	start := time.Now()
	req, ok := h.bind(c)
	if !ok {
		metrics.ReportsTotal.WithLabelValues("json", "invalid").Inc()
		return
	}
	doc, ok := h.load(c, req)
	if !ok {
		metrics.ReportsTotal.WithLabelValues("json", "invalid").Inc()
		return
	}

	builder := newBuilder(h.settings(req.Options))
	layout, err := builder.Build(c.Request.Context(), doc.Run, nil)
	if err != nil {
		metrics.ReportsTotal.WithLabelValues("json", "error").Inc()
		h.fail(c, http.StatusInternalServerError, "REPORT_BUILD_FAILED", err)
		return
	}
	if layout == nil {
		metrics.ReportsTotal.WithLabelValues("json", "incomplete").Inc()
		incomplete(c, len(doc.Run.YearlyResults), builder.YearsFor(doc.Run))
		return
	}

	metrics.ReportsTotal.WithLabelValues("json", "ok").Inc()
	metrics.BuildDurationSeconds.WithLabelValues("json").Observe(time.Since(start).Seconds())
	c.JSON(http.StatusOK, models.SummaryResponse{
		RequestID:      c.GetString(middleware.RequestIDKey),
		TeaModel:       string(doc.Run.TeaModel),
		FacilityType:   doc.Run.TeaModel.Label(),
		OperatingYears: len(doc.Run.YearlyResults),
		Sections:       layout.Sections,
		Escalation:     report.EscalationRows(doc.Run.TeaInputs),
	})
}

func (h *ReportHandler) bind(c *gin.Context) (models.ReportRequest, bool) {
	var req models.ReportRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return req, false
	}
	if (len(req.Run) == 0) == (req.RunID == "") {
		badRequest(c, "INVALID_REQUEST", "exactly one of run or run_id is required")
		return req, false
	}
	return req, true
}

func (h *ReportHandler) load(c *gin.Context, req models.ReportRequest) (*data.RunDocument, bool) {
	if len(req.Run) > 0 {
		doc, err := data.ParseRun(req.Run)
		if err != nil {
			badRequest(c, "INVALID_RUN", err.Error())
			return nil, false
		}
		return doc, true
	}

	if h.results == nil {
		badRequest(c, "RESULTS_SERVICE_UNAVAILABLE", "run_id requires a configured results service")
		return nil, false
	}
	doc, err := h.results.FetchRun(c.Request.Context(), req.RunID)
	if err != nil {
		var re *data.ResultsError
		if errors.As(err, &re) {
			status := http.StatusBadGateway
			if re.StatusCode == http.StatusNotFound {
				status = http.StatusNotFound
			}
			c.JSON(status, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    re.Code,
					Message: re.Message,
					Details: map[string]interface{}{"status_code": re.StatusCode},
				},
			})
			return nil, false
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_FETCH_ERROR",
				Message: err.Error(),
			},
		})
		return nil, false
	}
	return doc, true
}

func (h *ReportHandler) settings(opts models.ReportOptions) config.ReportConfig {
	return config.MergeReport(h.cfg, config.ReportConfig{
		YearsToRun:  opts.YearsToRun,
		ChartWidth:  opts.ChartWidth,
		ChartHeight: opts.ChartHeight,
	})
}

func (h *ReportHandler) sendWorkbook(c *gin.Context, fileName string, workbook []byte) {
	if fileName == "" {
		fileName = export.DefaultFileName
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}

func (h *ReportHandler) fail(c *gin.Context, status int, code string, err error) {
	log.WithFields(log.Fields{
		"request_id": c.GetString(middleware.RequestIDKey),
		"code":       code,
	}).WithError(err).Error("report failed")
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func newBuilder(cfg config.ReportConfig) *report.Builder {
	b := report.NewBuilder(cfg.YearsToRun)
	if cfg.ChartWidth > 0 && cfg.ChartHeight > 0 {
		b.ChartWidth, b.ChartHeight = cfg.ChartWidth, cfg.ChartHeight
	}
	return b
}

func incomplete(c *gin.Context, have, want int) {
	c.JSON(http.StatusConflict, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "RUN_INCOMPLETE",
			Message: fmt.Sprintf("run has %d of %d operating years; no report is available until it completes", have, want),
			Details: map[string]interface{}{
				"have_years": have,
				"want_years": want,
			},
		},
	})
}

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
