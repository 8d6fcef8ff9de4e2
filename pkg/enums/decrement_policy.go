package enums

import "fmt"

// DecrementPolicy decides what happens when a cart line quantity is driven
// below one: remove the line entirely, or clamp it at a single unit.
type DecrementPolicy string

const (
	DecrementPolicyRemove DecrementPolicy = "remove"
	DecrementPolicyClamp  DecrementPolicy = "clamp"
)

var validDecrementPolicies = []DecrementPolicy{
	DecrementPolicyRemove,
	DecrementPolicyClamp,
}

// String implements fmt.Stringer.
func (p DecrementPolicy) String() string {
	return string(p)
}

// IsValid reports whether the value is a known DecrementPolicy.
func (p DecrementPolicy) IsValid() bool {
	for _, candidate := range validDecrementPolicies {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseDecrementPolicy converts raw input into a DecrementPolicy.
func ParseDecrementPolicy(value string) (DecrementPolicy, error) {
	for _, candidate := range validDecrementPolicies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid decrement policy %q", value)
}
