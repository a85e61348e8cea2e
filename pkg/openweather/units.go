package openweather

import "github.com/pkg/errors"

// Units selects the unit system the provider reports measurements in.
type Units string

const (
	// UnitsStandard reports temperatures in Kelvin.
	UnitsStandard Units = "standard"
	// UnitsMetric reports temperatures in Celsius.
	UnitsMetric Units = "metric"
	// UnitsImperial reports temperatures in Fahrenheit.
	UnitsImperial Units = "imperial"
)

// ParseUnits validates a unit system name.
func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case UnitsStandard, UnitsMetric, UnitsImperial:
		return Units(s), nil
	}
	return "", errors.Errorf("unknown units %q: expected standard, metric or imperial", s)
}

// TemperatureScale returns the name of the temperature scale matching the
// unit system.
func (u Units) TemperatureScale() string {
	switch u {
	case UnitsStandard:
		return "Kelvin"
	case UnitsMetric:
		return "Celsius"
	case UnitsImperial:
		return "Fahrenheit"
	}
	return string(u)
}
