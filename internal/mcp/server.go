package mcp

import (
	"fmt"
	"log/slog"

	"github.com/Fuabioo/ghmcp/internal/config"
	"github.com/Fuabioo/ghmcp/internal/github"
	"github.com/Fuabioo/ghmcp/internal/ops"
	"github.com/Masterminds/semver/v3"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName = "github-mcp-server"

	// devVersion is advertised by builds without a semantic version.
	devVersion = "0.0.0-dev"
)

// Server wraps the MCP server with the GitHub dispatcher behind it.
type Server struct {
	mcp        *server.MCPServer
	dispatcher *ops.Dispatcher
	reader     *ops.ResourceReader
	logger     *slog.Logger
	version    string
}

// NewServer validates cfg and creates a server with every tool and resource
// registered against the configured GitHub API. version is the build version
// reported to clients.
func NewServer(cfg *config.Config, version string, logger *slog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := github.NewClient(github.Config{
		BaseURL:   cfg.APIURL,
		Token:     cfg.Token,
		UserAgent: cfg.UserAgent,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return newServer(client, version, logger), nil
}

// newServer builds a server on top of any fetcher. Tests pass a stub.
func newServer(fetcher github.Fetcher, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		dispatcher: ops.NewDispatcher(fetcher, logger),
		reader:     ops.NewResourceReader(fetcher, logger),
		logger:     logger,
		version:    AdvertisedVersion(version),
	}

	s.mcp = server.NewMCPServer(serverName, s.version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// registerTools advertises the operation table in order.
func (s *Server) registerTools() {
	for _, op := range ops.Operations() {
		opts := []mcp.ToolOption{mcp.WithDescription(op.Description)}
		for _, p := range op.Params {
			opts = append(opts, toolParam(p))
		}
		s.mcp.AddTool(mcp.NewTool(op.Name, opts...), s.handleTool)
	}
}

// toolParam maps one parameter descriptor onto its JSON schema property.
func toolParam(p ops.Param) mcp.ToolOption {
	props := []mcp.PropertyOption{mcp.Description(p.Description)}
	if p.Required {
		props = append(props, mcp.Required())
	}
	if len(p.Enum) > 0 {
		props = append(props, mcp.Enum(p.Enum...))
	}

	if p.Type == ops.TypeNumber {
		if def, ok := p.Default.(int); ok {
			props = append(props, mcp.DefaultNumber(float64(def)))
		}
		return mcp.WithNumber(p.Name, props...)
	}

	if def, ok := p.Default.(string); ok && def != "" {
		props = append(props, mcp.DefaultString(def))
	}
	return mcp.WithString(p.Name, props...)
}

func (s *Server) registerResources() {
	for _, res := range ops.Resources() {
		s.mcp.AddResource(mcp.NewResource(res.URI, res.Name,
			mcp.WithResourceDescription(res.Description),
			mcp.WithMIMEType(res.MIMEType),
		), s.handleResource)
	}
}

// AdvertisedVersion normalizes a build version ("v1.2.3", "1.2") to the
// semantic version reported in serverInfo.
func AdvertisedVersion(version string) string {
	parsed, err := semver.NewVersion(version)
	if err != nil {
		return devVersion
	}
	return parsed.String()
}
