package dosing

import "github.com/alexanderramin/dosewise/internal/domain"

// IsHighTemperature reports whether t is at or above the high threshold.
// The value is assumed to be in Celsius.
func IsHighTemperature(t domain.Temperature) bool {
	return t.Value >= HighTemperatureCelsius
}

// IsLowTemperature reports whether t is at or below the low threshold.
func IsLowTemperature(t domain.Temperature) bool {
	return t.Value <= LowTemperatureCelsius
}
