package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the provider's current weather endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

const defaultTimeout = 60 * time.Second

// Conditions is the subset of the provider's current weather report consumed
// by the application.
type Conditions struct {
	// Name is the place name the provider resolved the query to.
	Name string
	// Temperature is the current temperature, expressed in Units.
	Temperature float64
	Units       Units
}

// currentResponse mirrors the provider's current weather JSON. The
// temperature is decoded through a pointer so that a missing field is
// distinguishable from zero degrees.
type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

// errorResponse mirrors the provider's error body. cod is a string in error
// responses but a number in successful ones, so it is decoded untyped.
type errorResponse struct {
	Cod     interface{} `json:"cod"`
	Message string      `json:"message"`
}

// Client is a minimal client for the provider's current weather endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	units      Units
	httpClient *http.Client
}

type ClientOption func(*Client)

// WithBaseURL points the client at a different current weather endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithUnits sets the unit system measurements are requested in.
func WithUnits(units Units) ClientOption {
	return func(c *Client) {
		c.units = units
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient initializes and returns a new client. By default it talks to
// DefaultBaseURL in imperial units with a 60 second timeout.
func NewClient(apiKey string, options ...ClientOption) *Client {
	client := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		units:   UnitsImperial,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// CurrentByName fetches the current weather conditions for a free-text
// location query. Non-200 provider answers come back as *ProviderError, a
// parseable body without a temperature as ErrMissingTemperature.
func (c *Client) CurrentByName(ctx context.Context, name string) (*Conditions, error) {
	u, err := parseBaseURL(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base URL")
	}
	q := u.Query()
	q.Set("q", name)
	q.Set("appid", c.apiKey)
	q.Set("units", string(c.units))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send request")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Str("body", string(respBody)).
		Msg("openweathermap response")

	if resp.StatusCode != http.StatusOK {
		providerErr := &ProviderError{StatusCode: resp.StatusCode}
		var errorResp errorResponse
		if err := json.Unmarshal(respBody, &errorResp); err == nil {
			if errorResp.Cod != nil {
				providerErr.Code = fmt.Sprint(errorResp.Cod)
			}
			providerErr.Message = errorResp.Message
		}
		return nil, providerErr
	}

	var response currentResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, errors.Wrap(err, "failed to parse response body")
	}

	if response.Main.Temp == nil {
		return nil, ErrMissingTemperature
	}

	return &Conditions{
		Name:        response.Name,
		Temperature: *response.Main.Temp,
		Units:       c.units,
	}, nil
}
