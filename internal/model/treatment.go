package model

import "fmt"

// Treatment is a forest treatment prescription selected for the facility's supply area.
type Treatment struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Treatments is the fixed reference table of prescriptions.
// Keep ids stable; they come back from the feedstock simulator as frcsInputs.treatmentid.
var treatments = []Treatment{
	{ID: 1, Name: "Clearcut"},
	{ID: 2, Name: "Commercial Thin"},
	{ID: 3, Name: "Commercial Thin Chip Tree Removal"},
	{ID: 4, Name: "Timber Salvage"},
	{ID: 5, Name: "Timber Salvage Chip Tree Removal"},
	{ID: 6, Name: "Selection"},
	{ID: 7, Name: "Selection Chip Tree Removal"},
	{ID: 8, Name: "Tenth Acre Group Selection"},
	{ID: 9, Name: "Twentieth Acre Group Selection"},
	{ID: 10, Name: "Biomass Salvage"},
}

// Treatments returns a copy of the reference table in id order.
func Treatments() []Treatment {
	out := make([]Treatment, len(treatments))
	copy(out, treatments)
	return out
}

func TreatmentByID(id int) (Treatment, bool) {
	for _, t := range treatments {
		if t.ID == id {
			return t, true
		}
	}
	return Treatment{}, false
}

// TreatmentName resolves a display name, falling back to a placeholder for unknown ids.
func TreatmentName(id int) string {
	if t, ok := TreatmentByID(id); ok {
		return t.Name
	}
	return fmt.Sprintf("Unknown treatment (id %d)", id)
}
