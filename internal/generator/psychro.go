package generator

import (
	"github.com/google/uuid"
	"github.com/thermoquiz/thermoquiz/pkg/psychro"
)

// PsychroQuestion is a generated multi-part psychrometric chart question:
// plot two conditions, find dew points and enthalpies, construct the
// cooling and reheat lines and size both coils.
type PsychroQuestion struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`

	Outside      psychro.AirState `json:"outside"`
	Room         psychro.AirState `json:"room"`
	MassFlow     float64          `json:"mass_flow"`     // kg/s
	SpecificHeat float64          `json:"specific_heat"` // kJ/kg·K

	Parts map[string]string `json:"parts"`
}

// PsychroQuestion generates a cooling/reheat scenario. The outside
// condition is always drawn hotter than the room condition, so the
// generated question is solvable by construction.
func (g *Generator) PsychroQuestion() *PsychroQuestion {
	return &PsychroQuestion{
		ID:     uuid.NewString(),
		Prompt: "DATA:",
		Outside: psychro.AirState{
			DryBulbTemp: float64(g.intBetween(28, 35)),
			RelHumidity: float64(g.intBetween(40, 70)),
		},
		Room: psychro.AirState{
			DryBulbTemp: float64(g.intBetween(16, 24)),
			RelHumidity: float64(g.intBetween(40, 60)),
		},
		MassFlow:     round2(g.floatBetween(1.0, 5.0)),
		SpecificHeat: g.specificHeat,
		Parts: map[string]string{
			"a": "Plot the Outside and Room Conditions on the chart.",
			"b": "Determine the Dew Point temperature for the Outside and Room Conditions.",
			"c": "Determine the Enthalpy for the Outside and Room Conditions.",
			"d": "Plot the Cooling and Reheat Lines.",
			"e": "Determine the difference in Enthalpy between the Outside and Cooling Point.",
			"f": "Determine the difference in Enthalpy between the Cooling Point and Room.",
			"g": "Based on the given mass flow, calculate the Cooler Load.",
			"h": "Based on the given mass flow, calculate the Reheater Load.",
		},
	}
}
