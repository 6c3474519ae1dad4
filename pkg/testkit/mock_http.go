package testkit

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// MockTransport implements http.RoundTripper. It matches outgoing HTTP
// requests against the scenario's HTTPMocks and returns synthetic
// responses instead of touching the network.
//
// Install it on the shared client before the test:
//
//	mt := testkit.NewMockTransport(scenario)
//	httpclient.DefaultClient.Transport = mt
//	defer httpclient.ResetTransport()
type MockTransport struct {
	mu      sync.Mutex
	entries []mockEntry
	require bool
}

type mockEntry struct {
	mock      HTTPMock
	callCount int
}

// NewMockTransport builds a MockTransport from the scenario's HTTP mocks.
func NewMockTransport(s *Scenario) *MockTransport {
	mt := &MockTransport{require: s.MockRequired}
	for _, m := range s.HTTPMocks {
		mt.entries = append(mt.entries, mockEntry{mock: m})
	}
	return mt
}

// RoundTrip intercepts the outgoing request and returns a synthetic response.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	for i := range mt.entries {
		entry := &mt.entries[i]
		if !urlMatches(req.URL.String(), entry.mock.MatchURL) {
			continue
		}

		entry.callCount++
		return buildResponse(req, entry.mock), nil
	}

	if mt.require {
		return nil, fmt.Errorf("testkit: unexpected outgoing HTTP call to %s, no matching mock", req.URL)
	}

	return &http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(strings.NewReader(`{"error":"no mock configured"}`)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

// AssertAllCalled returns an error per mock that was never triggered.
func (mt *MockTransport) AssertAllCalled() []error {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	var errs []error
	for _, e := range mt.entries {
		if e.callCount == 0 {
			errs = append(errs, fmt.Errorf("testkit: http mock (matchUrl=%q) was never called", e.mock.MatchURL))
		}
	}
	return errs
}

// urlMatches prefix-matches candidate against pattern; empty matches any.
func urlMatches(candidate, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.HasPrefix(candidate, pattern)
}

func buildResponse(req *http.Request, m HTTPMock) *http.Response {
	code := m.StatusCode
	if code == 0 {
		code = http.StatusOK
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode: code,
		Status:     fmt.Sprintf("%d %s", code, http.StatusText(code)),
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(m.Body)),
		Request:    req,
	}
}
