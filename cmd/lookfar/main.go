// Command lookfar is a terminal client for web search.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/lookfar-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lookfar-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lookfar-cli/internal/adapters/driven/websearch/exa"
	"github.com/custodia-labs/lookfar-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/lookfar-cli/internal/core/services"
	"github.com/custodia-labs/lookfar-cli/internal/logger"
)

// envAPIKey overrides the configured API key when set.
const envAPIKey = "LOOKFAR_API_KEY"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; absence is not an error.
	_ = godotenv.Load()

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gateway, err := exa.NewClient(exa.Config{
		APIKey:            resolveAPIKey(store),
		BaseURL:           store.GetString(file.KeyBaseURL),
		Timeout:           time.Duration(store.GetInt(file.KeyTimeoutSeconds)) * time.Second,
		RequestsPerSecond: store.GetFloat(file.KeyRequestsPerSecond),
	})
	if err != nil {
		return fmt.Errorf("%w (set %s or %s in %s)", err, envAPIKey, file.KeyAPIKey, store.Path())
	}
	defer gateway.Close()

	history := memory.NewHistoryStore(store.GetInt(file.KeyHistoryLimit))

	container := services.NewContainer(gateway, history)
	cli.SetBuses(container.Commands(), container.Queries())

	// Pick up config edits while running; long TUI sessions should not
	// need a restart after rotating the API key.
	watcher, err := file.NewWatcher(store, func(s *file.ConfigStore) {
		if key := resolveAPIKey(s); key != "" {
			gateway.SetAPIKey(key)
		}
	})
	if err != nil {
		logger.Warn("config watcher unavailable: %v", err)
	} else {
		watcher.Start()
		defer watcher.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.Execute(ctx)
}

// resolveAPIKey prefers the environment over the config file.
func resolveAPIKey(store *file.ConfigStore) string {
	if key := os.Getenv(envAPIKey); key != "" {
		return key
	}
	return store.GetString(file.KeyAPIKey)
}
