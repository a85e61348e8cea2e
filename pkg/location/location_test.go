package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"city only", "Chicago", "Chicago"},
		{"city and state get the default country", "Chicago IL", "Chicago,IL,US"},
		{"city state country pass through", "Chicago IL US", "Chicago,IL,US"},
		{"extra whitespace is collapsed", "  Chicago   IL  ", "Chicago,IL,US"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"more than three tokens pass through", "New York City NY US", "New,York,City,NY,US"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Parse(tc.input).Query())
		})
	}
}

func TestCity(t *testing.T) {
	assert.Equal(t, "Chicago", Parse("Chicago IL US").City())
	assert.Equal(t, "Chicago", Parse("  Chicago  ").City())
	assert.Equal(t, "", Parse("").City())
	assert.Equal(t, "", Parse("   ").City())
}

func TestIsZero(t *testing.T) {
	assert.True(t, Parse("").IsZero())
	assert.True(t, Parse("  \t ").IsZero())
	assert.False(t, Parse("Chicago").IsZero())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Chicago IL", Parse(" Chicago  IL ").String())
	assert.Equal(t, "", Parse("").String())
}
