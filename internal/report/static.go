package report

// Engineering constants the feedstock simulator runs with. They are not derived from
// the run; the report lists them so readers can see what the harvest costs assume.
var assumptionRows = [][]any{
	{"LogLength, ft", 32},
	{"LoadWeight, green tons (logs)", 25},
	{"LoadWeight, green tons (chips)", 25},
	{"CTLTrailSpacing, ft", 50},
	{"HardwoodCostPremium, fraction", 0.2},
	{"ResidueRecoveryFraction for WT systems", 0.8},
	{"ResidueRecoveryFraction for CTL", 0.5},
	{"HardwoodFractionCT", 0.2},
	{"HardwoodFractionSLT", 0},
	{"HardwoodFractionLLT", 0},
	{"Feller/Bucker wage (2019)", 30.96},
	{"All Others wage (2019)", 22.26},
	{"Benefits and other payroll costs", "35%"},
	{"OIL_ETC_COST ($/mile)", 0.35},
	{"DRIVERS_PER_TRUCK", 1.67},
	{"MILES_PER_GALLON", 6},
	{"FUEL_COST ($/gallon)", 3.251},
	{"TRUCK_LABOR ($/hr)", 23.29},
}

var keyReferences = []string{
	"Fuel Reduction Cost Simulator",
	"Advanced Hardwood Biofuels Northwest",
	"California Biomass Collaborative",
	"EPA eGrid",
	"GREET model",
	"Literature for emission factors",
}

const disclaimer = "Results are estimates only and no guarantees are made that actual project " +
	"performance will match, and they do not necessarily reflect the views and policies of " +
	"the California Energy Commission."

// Assumptions returns a copy of the reference assumptions as label/value pairs.
func Assumptions() [][]any {
	out := make([][]any, len(assumptionRows))
	for i, r := range assumptionRows {
		out[i] = append([]any(nil), r...)
	}
	return out
}

func assumptionsTable() Table {
	return Table{
		Name:      "assumptions",
		Anchor:    AnchorAssumptions,
		HeaderRow: true,
		Columns:   []string{"Assumptions", "Total"},
		Rows:      Assumptions(),
	}
}

func referenceTables() []Table {
	refs := make([][]any, len(keyReferences))
	for i, r := range keyReferences {
		refs[i] = []any{r}
	}
	return []Table{
		{
			Name:      "keyReferences",
			Anchor:    AnchorKeyReferences,
			HeaderRow: true,
			Columns:   []string{"Key References"},
			Rows:      refs,
		},
		{
			Name:      "disclaimer",
			Anchor:    AnchorDisclaimer,
			HeaderRow: true,
			Columns:   []string{"Disclaimer"},
			Rows:      [][]any{{disclaimer}},
		},
	}
}
