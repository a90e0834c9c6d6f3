package model

// YearlyResult is one operating year's outcome as returned by the feedstock simulator
// and the TEA service. Year is 1-based from the facility's first operating year.
//
// Units:
// - TotalFeedstock, TotalCoproduct: green tons
// - *Cost fields: $ for the year (FuelCost is the $/ton feedstock price assumption)
type YearlyResult struct {
	Year int `json:"year"`

	TotalFeedstock float64 `json:"totalFeedstock"`
	TotalCoproduct float64 `json:"totalCoproduct"`

	TotalFeedstockCost      float64 `json:"totalFeedstockCost"`
	TotalTransportationCost float64 `json:"totalTransportationCost"`
	TotalMoveInCost         float64 `json:"totalMoveInCost"`
	FuelCost                float64 `json:"fuelCost"`

	LcaResults LcaResults `json:"lcaResults"`
	CashFlow   CashFlow   `json:"cashFlow"`
}

type LcaResults struct {
	Inputs      LcaInputs   `json:"inputs"`
	LciResults  LciResults  `json:"lciResults"`
	LciaResults LciaResults `json:"lciaResults"`
}

// LcaInputs are fuel volumes (gallons) and transport distance (km) used by harvest and haul.
type LcaInputs struct {
	Diesel   float64 `json:"diesel"`
	Gasoline float64 `json:"gasoline"`
	JetFuel  float64 `json:"jetfuel"`
	Distance float64 `json:"distance"`
}

// LciResults are life-cycle inventory quantities in kg.
type LciResults struct {
	CO2  float64 `json:"CO2"`
	CH4  float64 `json:"CH4"`
	N2O  float64 `json:"N2O"`
	CO2e float64 `json:"CO2e"`
	CO   float64 `json:"CO"`
	NOx  float64 `json:"NOx"`
	NH3  float64 `json:"NH3"`
	PM10 float64 `json:"PM10"`
	PM25 float64 `json:"PM25"`
	SO2  float64 `json:"SO2"`
	SOx  float64 `json:"SOx"`
	VOCs float64 `json:"VOCs"`
}

// LciaResults are impact-category scores in kg-equivalents.
type LciaResults struct {
	GlobalWarmingAir    float64 `json:"global_warming_air"`
	AcidificationAir    float64 `json:"acidification_air"`
	HHParticulateAir    float64 `json:"hh_particulate_air"`
	EutrophicationAir   float64 `json:"eutrophication_air"`
	EutrophicationWater float64 `json:"eutrophication_water"`
	SmogAir             float64 `json:"smog_air"`
}

// CashFlow is one year of the TEA cash-flow table ($).
type CashFlow struct {
	EquityRecovery           float64 `json:"EquityRecovery"`
	EquityInterest           float64 `json:"EquityInterest"`
	EquityPrincipalPaid      float64 `json:"EquityPrincipalPaid"`
	EquityPrincipalRemaining float64 `json:"EquityPrincipalRemaining"`
	DebtRecovery             float64 `json:"DebtRecovery"`
	DebtInterest             float64 `json:"DebtInterest"`
	DebtPrincipalPaid        float64 `json:"DebtPrincipalPaid"`
	DebtPrincipalRemaining   float64 `json:"DebtPrincipalRemaining"`
	NonFuelExpenses          float64 `json:"NonFuelExpenses"`
	DebtReserve              float64 `json:"DebtReserve"`
	Depreciation             float64 `json:"Depreciation"`
	IncomeCapacity           float64 `json:"IncomeCapacity"`
	InterestOnDebtReserve    float64 `json:"InterestOnDebtReserve"`
	TaxesWoCredit            float64 `json:"TaxesWoCredit"`
	TaxCredit                float64 `json:"TaxCredit"`
	Taxes                    float64 `json:"Taxes"`
	EnergyRevenueRequired    float64 `json:"EnergyRevenueRequired"`
}

// LineItem enumerates the cash-flow rows. The order is the report row order;
// keep values stable.
type LineItem int

const (
	EquityRecovery LineItem = iota
	EquityInterest
	EquityPrincipalPaid
	EquityPrincipalRemaining
	DebtRecovery
	DebtInterest
	DebtPrincipalPaid
	DebtPrincipalRemaining
	NonFuelExpenses
	DebtReserve
	Depreciation
	IncomeCapacity
	InterestOnDebtReserve
	TaxesWoCredit
	TaxCredit
	TaxesLine
	EnergyRevenueRequired
)

var lineItemLabels = [...]string{
	EquityRecovery:           "Equity Recovery",
	EquityInterest:           "Equity Interest",
	EquityPrincipalPaid:      "Equity Principal Paid",
	EquityPrincipalRemaining: "Equity Principal Remaining",
	DebtRecovery:             "Debt Recovery",
	DebtInterest:             "Debt Interest",
	DebtPrincipalPaid:        "Debt Principal Paid",
	DebtPrincipalRemaining:   "Debt Principal Remaining",
	NonFuelExpenses:          "Non-fuel Expenses",
	DebtReserve:              "Debt Reserve",
	Depreciation:             "Depreciation",
	IncomeCapacity:           "Income--Capacity",
	InterestOnDebtReserve:    "Interest on Debt Reserve",
	TaxesWoCredit:            "Taxes w/o credit",
	TaxCredit:                "Tax Credit",
	TaxesLine:                "Taxes",
	EnergyRevenueRequired:    "Energy Revenue Required",
}

// LineItems returns every cash-flow line item in report order.
func LineItems() []LineItem {
	out := make([]LineItem, len(lineItemLabels))
	for i := range out {
		out[i] = LineItem(i)
	}
	return out
}

func (li LineItem) String() string {
	if li < 0 || int(li) >= len(lineItemLabels) {
		return "Unknown"
	}
	return lineItemLabels[li]
}

// Value returns the amount for one line item.
func (cf CashFlow) Value(li LineItem) float64 {
	switch li {
	case EquityRecovery:
		return cf.EquityRecovery
	case EquityInterest:
		return cf.EquityInterest
	case EquityPrincipalPaid:
		return cf.EquityPrincipalPaid
	case EquityPrincipalRemaining:
		return cf.EquityPrincipalRemaining
	case DebtRecovery:
		return cf.DebtRecovery
	case DebtInterest:
		return cf.DebtInterest
	case DebtPrincipalPaid:
		return cf.DebtPrincipalPaid
	case DebtPrincipalRemaining:
		return cf.DebtPrincipalRemaining
	case NonFuelExpenses:
		return cf.NonFuelExpenses
	case DebtReserve:
		return cf.DebtReserve
	case Depreciation:
		return cf.Depreciation
	case IncomeCapacity:
		return cf.IncomeCapacity
	case InterestOnDebtReserve:
		return cf.InterestOnDebtReserve
	case TaxesWoCredit:
		return cf.TaxesWoCredit
	case TaxCredit:
		return cf.TaxCredit
	case TaxesLine:
		return cf.Taxes
	case EnergyRevenueRequired:
		return cf.EnergyRevenueRequired
	default:
		return 0
	}
}
