package ops

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/url"
	"slices"
	"testing"

	"github.com/Fuabioo/ghmcp/internal/github"
)

// stubFetcher answers every request with the same canned body and records
// the endpoints it was asked for.
type stubFetcher struct {
	body      string
	err       error
	nilResp   bool
	endpoints []string
}

func (s *stubFetcher) FetchJSON(_ context.Context, endpoint string) (*github.Response, error) {
	s.endpoints = append(s.endpoints, endpoint)
	if s.err != nil {
		return nil, s.err
	}
	if s.nilResp {
		return nil, nil
	}
	return github.NewResponse([]byte(s.body)), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// invoke runs one tool against a stub answering with body.
func invoke(t *testing.T, body, tool string, args map[string]any) (Result, *stubFetcher) {
	t.Helper()
	stub := &stubFetcher{body: body}
	result := NewDispatcher(stub, discardLogger()).Invoke(context.Background(), tool, args)
	return result, stub
}

// mustSucceed fails the test unless result is a success.
func mustSucceed(t *testing.T, result Result) {
	t.Helper()
	if result.Failed {
		t.Fatalf("expected success, got failure %q", result.Message)
	}
}

// objectKeys returns the sorted JSON keys of v, which must encode as an object.
func objectKeys(t *testing.T, v any) []string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	var object map[string]any
	if err := json.Unmarshal(data, &object); err != nil {
		t.Fatalf("payload is not an object: %s", data)
	}
	keys := make([]string, 0, len(object))
	for k := range object {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// toJSONArray re-decodes v, which must encode as an array of objects.
func toJSONArray(t *testing.T, v any) []map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	var items []map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		t.Fatalf("payload is not an array of objects: %s", data)
	}
	return items
}

func assertKeys(t *testing.T, got []string, want ...string) {
	t.Helper()
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

// parseEndpoint splits a recorded endpoint into path and query.
func parseEndpoint(t *testing.T, endpoint string) (string, url.Values) {
	t.Helper()
	u, err := url.Parse(endpoint)
	if err != nil {
		t.Fatalf("bad endpoint %q: %v", endpoint, err)
	}
	return u.Path, u.Query()
}
