package model

// Example input presets. Each call returns a fresh value so one run can never
// see another run's edits.

func defaultTaxCreditFrac() TaxCreditFrac {
	return TaxCreditFrac{1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
}

func defaultCommonInputs() CommonInputs {
	return CommonInputs{
		ElectricalFuelBaseYear: ElectricalFuelBaseYear{
			NetElectricalCapacity: 25000,
			CapacityFactor:        85,
			MoistureContent:       50,
			NetStationEfficiency:  20,
			FuelHeatingValue:      18608,
			FuelAshConcentration:  5,
		},
		ExpensesBaseYear: ExpensesBaseYear{
			BiomassFuelCost:        22.05,
			LaborCost:              2_000_000,
			MaintenanceCost:        1_500_000,
			InsurancePropertyTax:   1_400_000,
			Utilities:              200_000,
			AshDisposal:            100_000,
			Management:             200_000,
			OtherOperatingExpenses: 400_000,
		},
		Taxes: Taxes{
			FederalTaxRate:      34,
			StateTaxRate:        9.6,
			ProductionTaxCredit: 0.009,
		},
		Financing: Financing{
			DebtRatio:          75,
			InterestRateOnDebt: 5,
			EconomicLife:       20,
			CostOfEquity:       15,
		},
		IncomeOtherThanEnergy: IncomeOtherThanEnergy{
			CapacityPayment:           166,
			InterestRateOnDebtReserve: 5,
		},
		EscalationInflation: EscalationInflation{
			GeneralInflation:              2.1,
			EscalationProductionTaxCredit: 2.1,
			EscalationOther:               2.1,
		},
		TaxCreditFrac: defaultTaxCreditFrac(),
		FirstYear:     2016,
	}
}

func NewGenericPowerOnlyInputs() TeaInputs {
	t, _ := NewGenericTeaInputs(GenericPowerOnly, defaultCommonInputs(), GenericInputs{
		CapitalCost:    70_000_000,
		EscalationFuel: 2.1,
	})
	return t
}

func NewCHPInputs() TeaInputs {
	common := defaultCommonInputs()
	common.ExpensesBaseYear.LaborCost = 3_000_000
	common.ExpensesBaseYear.MaintenanceCost = 2_000_000
	common.ExpensesBaseYear.InsurancePropertyTax = 2_000_000
	common.ExpensesBaseYear.Utilities = 300_000
	common.ExpensesBaseYear.AshDisposal = 150_000
	common.ExpensesBaseYear.Management = 300_000
	common.ExpensesBaseYear.OtherOperatingExpenses = 600_000
	t, _ := NewGenericTeaInputs(CombinedHeatAndPower, common, GenericInputs{
		CapitalCost:    100_000_000,
		EscalationFuel: 2.1,
	})
	return t
}

func NewGasificationInputs() TeaInputs {
	return NewGasificationTeaInputs(defaultCommonInputs(), GasificationInputs{
		CapitalCost: GasifierCapitalCost{
			GasifierSystemCapitalCost:        16_000_000,
			GasCleaningSystemCapitalCost:     2_000_000,
			PowerGenerationCapitalCost:       1_500_000,
			EmissionControlSystemCapitalCost: 300_000,
			HeatRecoverySystemCapitalCost:    1_000_000,
		},
		EscalationBiomassFuel: 2.1,
		EscalationDualFuel:    2.1,
		EscalationHeatSales:   2.1,
		EscalationCharSales:   2.1,
	})
}

// PresetInputs returns the example inputs for a facility type.
func PresetInputs(model string) (TeaInputs, error) {
	ft, err := ParseFacilityType(model)
	if err != nil {
		return TeaInputs{}, err
	}
	switch ft {
	case CombinedHeatAndPower:
		return NewCHPInputs(), nil
	case GasificationPower:
		return NewGasificationInputs(), nil
	default:
		return NewGenericPowerOnlyInputs(), nil
	}
}
