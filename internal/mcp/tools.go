package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleTool serves every registered tool. Failures are reported inside the
// result, never as a protocol error.
func (s *Server) handleTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := s.dispatcher.Invoke(ctx, request.Params.Name, request.GetArguments())
	if result.Failed {
		return errorResult(result.Message), nil
	}
	return jsonResult(result.Payload), nil
}

// handleResource serves both resources. Unlike tools, read failures surface
// as protocol errors.
func (s *Server) handleResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI

	value, err := s.reader.Read(ctx, uri)
	if err != nil {
		return nil, err
	}

	text, err := marshalIndent(value)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		},
	}, nil
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + message)
}

// jsonResult creates an MCP success result from a JSON-serializable object.
func jsonResult(data any) *mcp.CallToolResult {
	text, err := marshalIndent(data)
	if err != nil {
		return errorResult(err.Error())
	}
	return mcp.NewToolResultText(text)
}

func marshalIndent(data any) (string, error) {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(jsonBytes), nil
}
