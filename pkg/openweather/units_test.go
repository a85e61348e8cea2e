package openweather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnits(t *testing.T) {
	for _, s := range []string{"standard", "metric", "imperial"} {
		units, err := ParseUnits(s)
		require.NoError(t, err)
		assert.Equal(t, Units(s), units)
	}

	_, err := ParseUnits("fahrenheit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown units "fahrenheit"`)
}

func TestTemperatureScale(t *testing.T) {
	assert.Equal(t, "Kelvin", UnitsStandard.TemperatureScale())
	assert.Equal(t, "Celsius", UnitsMetric.TemperatureScale())
	assert.Equal(t, "Fahrenheit", UnitsImperial.TemperatureScale())
}
