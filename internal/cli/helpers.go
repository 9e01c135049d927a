package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Fuabioo/ghmcp/internal/config"
	"github.com/Fuabioo/ghmcp/internal/errors"
	"github.com/Fuabioo/ghmcp/internal/github"
	"golang.org/x/term"
)

// outputJSON marshals and prints JSON to stdout.
func outputJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// isTerminal checks if the given file descriptor is a TTY.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// getExitCode maps error codes to CLI exit codes.
func getExitCode(err error) int {
	if err == nil {
		return 0
	}

	switch errors.Code(err) {
	case errors.CodeMissingToken, errors.CodeInvalidConfig:
		return 2 // Configuration
	case errors.CodeUpstreamUnreachable, errors.CodeUpstreamError:
		return 3 // GitHub
	case errors.CodeUnknownTool, errors.CodeUnknownResource:
		return 4 // Not found
	default:
		return 1 // General error
	}
}

// loadConfig loads the configuration from --config, the config directory
// and the environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInvalidConfig, "failed to load config", err)
	}
	return cfg, nil
}

// newLogger creates the stderr logger. --quiet keeps only errors.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Level()
	if flagQuiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newClient loads and validates the configuration and returns a GitHub
// client built from it, along with the logger it logs to.
func newClient() (*github.Client, *slog.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := newLogger(cfg)
	client, err := github.NewClient(github.Config{
		BaseURL:   cfg.APIURL,
		Token:     cfg.Token,
		UserAgent: cfg.UserAgent,
		Logger:    logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, logger, nil
}

// parseCallArgs turns key=value pairs into a tool argument map.
func parseCallArgs(pairs []string) (map[string]any, error) {
	args := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.InvalidArgument("argument", fmt.Sprintf("expected key=value, got %q", pair))
		}
		args[key] = value
	}
	return args, nil
}

// printError prints an error to stderr with appropriate formatting.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
