package location

import "strings"

// defaultCountry is appended when a location names a city and a state but no
// country.
const defaultCountry = "US"

// Location is a free-text place query, loosely structured as
// "City [State] [Country]" with ISO3166 codes for state and country. The
// string is kept as typed; rejecting bad locations is left to the provider.
type Location struct {
	raw string
}

// Parse wraps a raw location string. Any whitespace-separated string is
// accepted, including the empty one.
func Parse(s string) Location {
	return Location{raw: s}
}

// IsZero reports whether the location contains no tokens at all.
func (l Location) IsZero() bool {
	return len(l.tokens()) == 0
}

// City returns the first token of the location, or the empty string.
func (l Location) City() string {
	tokens := l.tokens()
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

// Query formats the location for the provider's q query parameter: tokens
// joined by commas, with the default country appended when only a city and a
// state are given.
func (l Location) Query() string {
	tokens := l.tokens()
	if len(tokens) == 2 {
		tokens = append(tokens, defaultCountry)
	}
	return strings.Join(tokens, ",")
}

func (l Location) String() string {
	return strings.Join(l.tokens(), " ")
}

func (l Location) tokens() []string {
	return strings.Fields(l.raw)
}
