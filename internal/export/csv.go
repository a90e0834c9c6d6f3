package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"biomass-report/internal/model"
)

// WriteLedgerCSV writes one row per operating year with the raw, unconverted values
// the report is aggregated from.
func WriteLedgerCSV(out io.Writer, years []model.YearlyResult) error {
	w := csv.NewWriter(out)

	header := []string{
		"year",
		"total_feedstock",
		"total_coproduct",
		"total_feedstock_cost",
		"total_transportation_cost",
		"total_move_in_cost",
		"fuel_cost",
		"diesel",
		"gasoline",
		"jetfuel",
		"distance",
		"co2e",
	}
	for _, li := range model.LineItems() {
		header = append(header, li.String())
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, y := range years {
		in := y.LcaResults.Inputs
		row := []string{
			strconv.Itoa(y.Year),
			fmtFloat(y.TotalFeedstock),
			fmtFloat(y.TotalCoproduct),
			fmtFloat(y.TotalFeedstockCost),
			fmtFloat(y.TotalTransportationCost),
			fmtFloat(y.TotalMoveInCost),
			fmtFloat(y.FuelCost),
			fmtFloat(in.Diesel),
			fmtFloat(in.Gasoline),
			fmtFloat(in.JetFuel),
			fmtFloat(in.Distance),
			fmtFloat(y.LcaResults.LciResults.CO2e),
		}
		for _, li := range model.LineItems() {
			row = append(row, fmtFloat(y.CashFlow.Value(li)))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
