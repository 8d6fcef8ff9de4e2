package enums

import "fmt"

// ComboSlot identifies one of the three roles a combo bundle must fill.
type ComboSlot string

const (
	ComboSlotDestilado  ComboSlot = "destilado"
	ComboSlotEnergetico ComboSlot = "energetico"
	ComboSlotGelo       ComboSlot = "gelo"
)

var validComboSlots = []ComboSlot{
	ComboSlotDestilado,
	ComboSlotEnergetico,
	ComboSlotGelo,
}

// String implements fmt.Stringer.
func (s ComboSlot) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ComboSlot.
func (s ComboSlot) IsValid() bool {
	for _, candidate := range validComboSlots {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseComboSlot converts raw input into a ComboSlot.
func ParseComboSlot(value string) (ComboSlot, error) {
	for _, candidate := range validComboSlots {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid combo slot %q", value)
}

// EnergeticoMode selects how the energetico slot is fulfilled: a single
// two-liter bottle or a five-pack of cans. The two modes have disjoint
// eligible sets, so switching the mode invalidates any prior pick.
type EnergeticoMode string

const (
	EnergeticoModeBottle2L EnergeticoMode = "2l"
	EnergeticoModeCans     EnergeticoMode = "5cans"
)

var validEnergeticoModes = []EnergeticoMode{
	EnergeticoModeBottle2L,
	EnergeticoModeCans,
}

// String implements fmt.Stringer.
func (m EnergeticoMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known EnergeticoMode.
func (m EnergeticoMode) IsValid() bool {
	for _, candidate := range validEnergeticoModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// Quantity returns how many units of the selected energetico the mode buys.
func (m EnergeticoMode) Quantity() int {
	if m == EnergeticoModeCans {
		return 5
	}
	return 1
}

// ParseEnergeticoMode converts raw input into an EnergeticoMode.
func ParseEnergeticoMode(value string) (EnergeticoMode, error) {
	for _, candidate := range validEnergeticoModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid energetico mode %q", value)
}
