package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// FacilityType tags the technology variant a TEA run was computed for.
type FacilityType string

const (
	GenericPowerOnly     FacilityType = "GPO"
	CombinedHeatAndPower FacilityType = "CHP"
	GasificationPower    FacilityType = "GP"
)

var ErrUnknownFacilityType = errors.New("unknown facility type")

// ParseFacilityType accepts the short tags ("GPO", "CHP", "GP") and the long
// model names used by the TEA service routes ("genericPowerOnly", ...).
func ParseFacilityType(s string) (FacilityType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gpo", "genericpoweronly":
		return GenericPowerOnly, nil
	case "chp", "genericcombinedheatpower", "combinedheatandpower":
		return CombinedHeatAndPower, nil
	case "gp", "gasificationpower":
		return GasificationPower, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFacilityType, s)
}

func (f FacilityType) Label() string {
	switch f {
	case GenericPowerOnly:
		return "Generic Power Only"
	case CombinedHeatAndPower:
		return "Combined Heat and Power"
	case GasificationPower:
		return "Gasification Power"
	default:
		return string(f)
	}
}

// Financing inputs. Rates are percentages, EconomicLife is years.
type Financing struct {
	DebtRatio          float64 `json:"DebtRatio"`
	InterestRateOnDebt float64 `json:"InterestRateOnDebt"`
	EconomicLife       int     `json:"EconomicLife"`
	CostOfEquity       float64 `json:"CostOfEquity"`
}

type Taxes struct {
	FederalTaxRate      float64 `json:"FederalTaxRate"`
	StateTaxRate        float64 `json:"StateTaxRate"`
	ProductionTaxCredit float64 `json:"ProductionTaxCredit"`
}

// EscalationInflation holds the rates every variant carries (%/y).
// Fuel escalation differs per variant; see GenericInputs and GasificationInputs.
type EscalationInflation struct {
	GeneralInflation              float64 `json:"GeneralInflation"`
	EscalationProductionTaxCredit float64 `json:"EscalationProductionTaxCredit"`
	EscalationOther               float64 `json:"EscalationOther"`
}

type IncomeOtherThanEnergy struct {
	CapacityPayment           float64 `json:"CapacityPayment"`
	InterestRateOnDebtReserve float64 `json:"InterestRateonDebtReserve"`
}

type CarbonCredit struct {
	CIscore            float64 `json:"CIscore"`
	EnergyEconomyRatio float64 `json:"EnergyEconomyRatio"`
	LcfsPrice          float64 `json:"LcfsPrice"`
}

// ElectricalFuelBaseYear: capacity in kWe, factors and efficiency in %, heating value in kJ/kg.
type ElectricalFuelBaseYear struct {
	NetElectricalCapacity float64 `json:"NetElectricalCapacity"`
	CapacityFactor        float64 `json:"CapacityFactor"`
	MoistureContent       float64 `json:"MoistureContent"`
	NetStationEfficiency  float64 `json:"NetStationEfficiency"`
	FuelHeatingValue      float64 `json:"FuelHeatingValue"`
	FuelAshConcentration  float64 `json:"FuelAshConcentration"`
}

type ExpensesBaseYear struct {
	BiomassFuelCost        float64 `json:"BiomassFuelCost"`
	LaborCost              float64 `json:"LaborCost"`
	MaintenanceCost        float64 `json:"MaintenanceCost"`
	InsurancePropertyTax   float64 `json:"InsurancePropertyTax"`
	Utilities              float64 `json:"Utilities"`
	AshDisposal            float64 `json:"AshDisposal"`
	Management             float64 `json:"Management"`
	OtherOperatingExpenses float64 `json:"OtherOperatingExpenses"`
}

// TaxCreditFrac is the per-year multiplier on the production tax credit,
// indexed by year offset from the first operating year.
type TaxCreditFrac []float64

func (f TaxCreditFrac) Validate(economicLife int) error {
	if len(f) < economicLife {
		return fmt.Errorf("TaxCreditFrac has %d entries, economic life is %d years", len(f), economicLife)
	}
	for i, v := range f {
		if v < 0 || v > 1 {
			return fmt.Errorf("TaxCreditFrac[%d]=%g must be in [0, 1]", i, v)
		}
	}
	return nil
}

// CommonInputs is the part of the TEA input every facility type shares.
type CommonInputs struct {
	ElectricalFuelBaseYear ElectricalFuelBaseYear `json:"ElectricalFuelBaseYear"`
	ExpensesBaseYear       ExpensesBaseYear       `json:"ExpensesBaseYear"`
	Taxes                  Taxes                  `json:"Taxes"`
	Financing              Financing              `json:"Financing"`
	IncomeOtherThanEnergy  IncomeOtherThanEnergy  `json:"IncomeOtherThanEnergy"`
	EscalationInflation    EscalationInflation    `json:"EscalationInflation"`
	TaxCreditFrac          TaxCreditFrac          `json:"TaxCreditFrac"`
	CarbonCredit           CarbonCredit           `json:"CarbonCredit"`
	IncludeCarbonCredit    bool                   `json:"IncludeCarbonCredit"`
	FirstYear              int                    `json:"FirstYear"`
}

// GenericInputs are the fields specific to power-only and CHP facilities.
type GenericInputs struct {
	CapitalCost    float64
	EscalationFuel float64
}

// GasifierCapitalCost itemizes a gasification plant's capital cost ($).
type GasifierCapitalCost struct {
	GasifierSystemCapitalCost        float64 `json:"GasifierSystemCapitalCost"`
	GasCleaningSystemCapitalCost     float64 `json:"GasCleaningSystemCapitalCost"`
	PowerGenerationCapitalCost       float64 `json:"PowerGenerationCapitalCost"`
	EmissionControlSystemCapitalCost float64 `json:"EmissionControlSystemCapitalCost"`
	HeatRecoverySystemCapitalCost    float64 `json:"HeatRecoverySystemCapitalCost"`
}

// GasificationInputs are the fields specific to gasification power facilities.
type GasificationInputs struct {
	CapitalCost           GasifierCapitalCost
	EscalationBiomassFuel float64
	EscalationDualFuel    float64
	EscalationHeatSales   float64
	EscalationCharSales   float64
}

// TeaInputs is the input configuration a TEA run used. Exactly one variant is set,
// matching Model; callers narrow with Generic or Gasification.
type TeaInputs struct {
	Model FacilityType
	CommonInputs

	generic      *GenericInputs
	gasification *GasificationInputs
}

// NewGenericTeaInputs builds a GPO or CHP input set.
func NewGenericTeaInputs(ft FacilityType, common CommonInputs, g GenericInputs) (TeaInputs, error) {
	if ft != GenericPowerOnly && ft != CombinedHeatAndPower {
		return TeaInputs{}, fmt.Errorf("%w: %q is not a generic facility type", ErrUnknownFacilityType, ft)
	}
	return TeaInputs{Model: ft, CommonInputs: common, generic: &g}, nil
}

func NewGasificationTeaInputs(common CommonInputs, g GasificationInputs) TeaInputs {
	return TeaInputs{Model: GasificationPower, CommonInputs: common, gasification: &g}
}

func (t TeaInputs) Generic() (GenericInputs, bool) {
	if t.generic == nil {
		return GenericInputs{}, false
	}
	return *t.generic, true
}

func (t TeaInputs) Gasification() (GasificationInputs, bool) {
	if t.gasification == nil {
		return GasificationInputs{}, false
	}
	return *t.gasification, true
}

// CapitalCost is the headline capital cost for the active variant. For gasification
// plants this is the gasifier system cost, matching what the TEA service reports.
func (t TeaInputs) CapitalCost() float64 {
	if g, ok := t.Generic(); ok {
		return g.CapitalCost
	}
	if g, ok := t.Gasification(); ok {
		return g.CapitalCost.GasifierSystemCapitalCost
	}
	return 0
}

func (t TeaInputs) Validate() error {
	switch t.Model {
	case GenericPowerOnly, CombinedHeatAndPower:
		if t.generic == nil {
			return fmt.Errorf("%s inputs missing generic fields", t.Model)
		}
	case GasificationPower:
		if t.gasification == nil {
			return errors.New("GP inputs missing gasification fields")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFacilityType, t.Model)
	}
	if t.Financing.EconomicLife <= 0 {
		return errors.New("Financing.EconomicLife must be > 0")
	}
	if err := t.TaxCreditFrac.Validate(t.Financing.EconomicLife); err != nil {
		return err
	}
	return nil
}

type genericWire struct {
	CapitalCost         float64 `json:"CapitalCost"`
	EscalationInflation struct {
		EscalationFuel float64 `json:"EscalationFuel"`
	} `json:"EscalationInflation"`
}

type gasificationWire struct {
	CapitalCost         GasifierCapitalCost `json:"CapitalCost"`
	EscalationInflation struct {
		EscalationBiomassFuel float64 `json:"EscalationBiomassFuel"`
		EscalationDualFuel    float64 `json:"EscalationDualFuel"`
		EscalationHeatSales   float64 `json:"EscalationHeatSales"`
		EscalationCharSales   float64 `json:"EscalationCharSales"`
	} `json:"EscalationInflation"`
}

// DecodeTeaInputs decodes the TEA service's input document for facility type ft.
// The document itself carries no tag; the variant comes from the run.
func DecodeTeaInputs(ft FacilityType, raw []byte) (TeaInputs, error) {
	var common CommonInputs
	if err := json.Unmarshal(raw, &common); err != nil {
		return TeaInputs{}, fmt.Errorf("decode common TEA inputs: %w", err)
	}
	switch ft {
	case GenericPowerOnly, CombinedHeatAndPower:
		var w genericWire
		if err := json.Unmarshal(raw, &w); err != nil {
			return TeaInputs{}, fmt.Errorf("decode %s TEA inputs: %w", ft, err)
		}
		return NewGenericTeaInputs(ft, common, GenericInputs{
			CapitalCost:    w.CapitalCost,
			EscalationFuel: w.EscalationInflation.EscalationFuel,
		})
	case GasificationPower:
		var w gasificationWire
		if err := json.Unmarshal(raw, &w); err != nil {
			return TeaInputs{}, fmt.Errorf("decode GP TEA inputs: %w", err)
		}
		return NewGasificationTeaInputs(common, GasificationInputs{
			CapitalCost:           w.CapitalCost,
			EscalationBiomassFuel: w.EscalationInflation.EscalationBiomassFuel,
			EscalationDualFuel:    w.EscalationInflation.EscalationDualFuel,
			EscalationHeatSales:   w.EscalationInflation.EscalationHeatSales,
			EscalationCharSales:   w.EscalationInflation.EscalationCharSales,
		}), nil
	default:
		return TeaInputs{}, fmt.Errorf("%w: %q", ErrUnknownFacilityType, ft)
	}
}

// MarshalJSON writes the same untagged shape DecodeTeaInputs reads.
func (t TeaInputs) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(t.CommonInputs)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	esc, _ := doc["EscalationInflation"].(map[string]any)
	if esc == nil {
		esc = map[string]any{}
		doc["EscalationInflation"] = esc
	}
	if g, ok := t.Generic(); ok {
		doc["CapitalCost"] = g.CapitalCost
		esc["EscalationFuel"] = g.EscalationFuel
	}
	if g, ok := t.Gasification(); ok {
		doc["CapitalCost"] = g.CapitalCost
		esc["EscalationBiomassFuel"] = g.EscalationBiomassFuel
		esc["EscalationDualFuel"] = g.EscalationDualFuel
		esc["EscalationHeatSales"] = g.EscalationHeatSales
		esc["EscalationCharSales"] = g.EscalationCharSales
	}
	return json.Marshal(doc)
}

// TeaResults is the run-level TEA summary.
type TeaResults struct {
	CurrentLAC  CurrentLAC  `json:"CurrentLAC"`
	ConstantLAC ConstantLAC `json:"ConstantLAC"`
}

// CurrentLAC is the levelized annual cost in current dollars ($/kWh).
type CurrentLAC struct {
	PresentWorth       []float64 `json:"PresentWorth"`
	CurrentLACofEnergy float64   `json:"CurrentLACofEnergy"`
}

// ConstantLAC is the levelized annual cost in constant dollars ($/kWh).
type ConstantLAC struct {
	PresentWorth        []float64 `json:"PresentWorth"`
	ConstantLACofEnergy float64   `json:"ConstantLACofEnergy"`
}
