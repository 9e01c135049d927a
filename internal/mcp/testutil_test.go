package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/Fuabioo/ghmcp/internal/github"
	"github.com/mark3labs/mcp-go/mcp"
)

// fakeGitHub answers endpoints by path prefix with canned bodies.
type fakeGitHub struct {
	mu        sync.Mutex
	bodies    map[string]string
	endpoints []string
}

func (f *fakeGitHub) FetchJSON(_ context.Context, endpoint string) (*github.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.endpoints = append(f.endpoints, endpoint)

	path, _, _ := strings.Cut(endpoint, "?")
	if body, ok := f.bodies[path]; ok {
		return github.NewResponse([]byte(body)), nil
	}
	return github.NewResponse([]byte(`{"message":"Not Found","documentation_url":"https://docs.github.com/rest"}`)), nil
}

// setupTestServer creates a server backed by a fake GitHub serving bodies.
func setupTestServer(t *testing.T, bodies map[string]string) (*Server, *fakeGitHub) {
	t.Helper()
	fake := &fakeGitHub{bodies: bodies}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newServer(fake, "1.2.3", logger), fake
}

// newTestRequest creates a CallToolRequest for testing
func newTestRequest(name string, arguments map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: arguments,
		},
	}
}

// getResultText extracts the text from a CallToolResult for testing
func getResultText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := mcp.AsTextContent(result.Content[0]); ok {
		return textContent.Text
	}
	return ""
}

// rpc sends one JSON-RPC request through the protocol layer and returns the
// decoded reply.
func rpc(t *testing.T, srv *Server, method string, params any) rpcReply {
	t.Helper()

	request := map[string]any{"jsonrpc": "2.0", "id": 1, "method": method}
	if params != nil {
		request["params"] = params
	}
	raw, err := json.Marshal(request)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	reply := srv.mcp.HandleMessage(context.Background(), raw)
	data, err := json.Marshal(reply)
	if err != nil {
		t.Fatalf("failed to marshal reply: %v", err)
	}

	var decoded rpcReply
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to parse reply %s: %v", data, err)
	}
	return decoded
}

type rpcReply struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
