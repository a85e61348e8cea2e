package openweather

import (
	"net/netip"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// parseBaseURL validates that the configured endpoint is one the client can
// actually issue a request against, and returns it parsed. Plain HTTP and
// local-network hosts are accepted (the endpoint is overridable and points at
// test servers then); anything without an http(s) scheme and a host is not.
func parseBaseURL(rawURL string) (*url.URL, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid URL")
	}

	switch parsed.Scheme {
	case "http", "https":
	default:
		return nil, errors.Errorf("unsupported URL scheme %q", parsed.Scheme)
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return nil, errors.New("URL host is required")
	}

	// IP literals are checked without DNS lookups.
	if addr, err := netip.ParseAddr(host); err == nil {
		addr = addr.Unmap()
		if addr.IsUnspecified() || addr.IsMulticast() {
			return nil, errors.Errorf("disallowed IP address %q", host)
		}
	}

	return parsed, nil
}
