// Package testkit provides a JSON-scenario-driven REST API testing kit.
//
// Each scenario is a JSON file describing the request to fire (method,
// URL, body file), the expected status code, an optional expected
// response body file for a JSON diff, and optional mocks for outgoing
// HTTP calls. Scenario files live next to the *_test.go files:
//
//	testdata/
//	  create_product.json           ← scenario
//	  create_product_req.json       ← request body
//	  create_product_res.json       ← expected response body
//
// Example _test.go:
//
//	func TestAPI(t *testing.T) {
//	    handler := server.Build(deps).Handler()
//	    testkit.RunDir(t, handler, "testdata")
//	}
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Scenario describes a single REST API test case loaded from a JSON file.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	RequestMethod   string            `json:"requestMethod"`
	RequestURL      string            `json:"requestUrl"`
	RequestFileName string            `json:"requestFileName"` // request body file, relative to the scenario dir
	Headers         map[string]string `json:"headers"`

	ResponseFileName string `json:"responseFileName"` // expected response body file
	ExpectedCode     int    `json:"expectedCode"`

	// MockRequired fails the test when an outgoing HTTP call has no
	// matching mock step.
	MockRequired bool `json:"mockRequired"`

	// HTTPMocks intercept outgoing calls made through pkg/httpclient.
	HTTPMocks []HTTPMock `json:"httpMocks"`

	dir string // directory of the scenario file, set at load time
}

// HTTPMock describes one intercepted outgoing HTTP call.
type HTTPMock struct {
	// MatchURL prefix-matches the outgoing request URL. Empty matches any.
	MatchURL string `json:"matchUrl"`

	// StatusCode of the synthetic response. Defaults to 200.
	StatusCode int `json:"statusCode"`

	// Body is the synthetic response body, inline JSON.
	Body json.RawMessage `json:"body"`
}

// LoadScenario reads and validates a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("testkit: invalid scenario %q: %w", abs, err)
	}

	s.dir = filepath.Dir(abs)
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.RequestURL == "" {
		return fmt.Errorf("requestUrl is required")
	}
	if s.ExpectedCode == 0 {
		return fmt.Errorf("expectedCode is required")
	}
	if s.RequestMethod == "" {
		s.RequestMethod = "GET"
	}
	return nil
}

// RequestBodyPath resolves RequestFileName against the scenario dir.
// Returns "" when no request body is configured.
func (s *Scenario) RequestBodyPath() string {
	if s.RequestFileName == "" {
		return ""
	}
	if filepath.IsAbs(s.RequestFileName) {
		return s.RequestFileName
	}
	return filepath.Join(s.dir, s.RequestFileName)
}

// ResponseBodyPath resolves ResponseFileName against the scenario dir.
func (s *Scenario) ResponseBodyPath() string {
	if s.ResponseFileName == "" {
		return ""
	}
	if filepath.IsAbs(s.ResponseFileName) {
		return s.ResponseFileName
	}
	return filepath.Join(s.dir, s.ResponseFileName)
}
