package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Fuabioo/ghmcp/internal/config"
	"github.com/mark3labs/mcp-go/server"
)

// Listen serves the MCP protocol over in and out until ctx is cancelled or
// the input stream closes. Protocol output goes to out only; diagnostics go
// to the logger.
func (s *Server) Listen(ctx context.Context, in io.Reader, out io.Writer) error {
	stdioServer := server.NewStdioServer(s.mcp)
	stdioServer.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))

	s.logger.Info("serving MCP over stdio", "server", serverName, "version", s.version)

	if err := stdioServer.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP: %w", err)
	}
	return nil
}

// Serve creates a server from cfg and serves it on stdio until interrupted.
func Serve(ctx context.Context, cfg *config.Config, version string, logger *slog.Logger) error {
	srv, err := NewServer(cfg, version, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Listen(ctx, os.Stdin, os.Stdout)
}
