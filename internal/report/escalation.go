package report

import (
	"biomass-report/internal/format"
	"biomass-report/internal/model"
)

// LabeledValue is one display row outside the sheet layout.
type LabeledValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// EscalationRows lists the escalation and inflation rates an input set carries.
// Generic and gasification inputs have different fuel escalation fields.
func EscalationRows(in model.TeaInputs) []LabeledValue {
	pct := func(v float64) string { return format.Number(v, format.DefaultDecimals) + "%" }
	esc := in.EscalationInflation
	rows := []LabeledValue{
		{"General Inflation", pct(esc.GeneralInflation)},
	}
	if g, ok := in.Generic(); ok {
		rows = append(rows, LabeledValue{"Escalation Fuel", pct(g.EscalationFuel)})
	}
	if g, ok := in.Gasification(); ok {
		rows = append(rows,
			LabeledValue{"Escalation Biomass Fuel", pct(g.EscalationBiomassFuel)},
			LabeledValue{"Escalation Dual Fuel", pct(g.EscalationDualFuel)},
			LabeledValue{"Escalation Heat Sales", pct(g.EscalationHeatSales)},
			LabeledValue{"Escalation Char Sales", pct(g.EscalationCharSales)},
		)
	}
	return append(rows,
		LabeledValue{"Escalation Production Tax Credit", pct(esc.EscalationProductionTaxCredit)},
		LabeledValue{"Escalation Other", pct(esc.EscalationOther)},
	)
}
