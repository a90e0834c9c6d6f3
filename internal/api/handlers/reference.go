package handlers

import (
	"net/http"

	"biomass-report/internal/api/models"
	"biomass-report/internal/model"
	"biomass-report/internal/report"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the fixed lookup data a report is built from.
type ReferenceHandler struct{}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// ListTreatments handles GET /api/v1/treatments
func (h *ReferenceHandler) ListTreatments(c *gin.Context) {
	c.JSON(http.StatusOK, models.TreatmentsResponse{Treatments: model.Treatments()})
}

// ListAssumptions handles GET /api/v1/assumptions
func (h *ReferenceHandler) ListAssumptions(c *gin.Context) {
	c.JSON(http.StatusOK, models.AssumptionsResponse{Assumptions: report.Assumptions()})
}

// GetPreset handles GET /api/v1/presets/:model
func (h *ReferenceHandler) GetPreset(c *gin.Context) {
	inputs, err := model.PresetInputs(c.Param("model"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_MODEL",
				Message: err.Error(),
				Details: map[string]interface{}{"models": []string{"GPO", "CHP", "GP"}},
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.PresetResponse{
		Model:      string(inputs.Model),
		Label:      inputs.Model.Label(),
		Inputs:     inputs,
		Escalation: report.EscalationRows(inputs),
	})
}
