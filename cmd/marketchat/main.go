// marketchat is a terminal rendering consumer for the KeshoMarket
// conversational recommendation engine. The engine itself is embeddable;
// this binary wires a catalog provider and the Gemini gateway to it and
// renders settled messages block by block.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keshomarket/cmd/marketchat/tui"
	"keshomarket/internal/assistant"
	"keshomarket/internal/catalog"
	"keshomarket/internal/chat"
	"keshomarket/internal/config"
	"keshomarket/internal/logging"
)

var (
	configPath string
	apiKey     string
	seedPath   string
	dbPath     string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "marketchat",
	Short: "KeshoMarket assistant chat for the terminal",
	Long: `marketchat runs the KeshoMarket conversational recommendation engine
against a local catalog and the Gemini API, rendering inline product
recommendations and web citations in the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "keshomarket.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "catalog seed YAML path")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "catalog SQLite database path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func run() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	if seedPath != "" {
		cfg.Catalog.SeedPath = seedPath
	}
	if dbPath != "" {
		cfg.Catalog.DatabasePath = dbPath
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.JSON)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider, cleanup, err := buildProvider(ctx, cfg.Catalog, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	gateway, err := assistant.NewGeminiGateway(ctx, assistant.GeminiConfig{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.TimeoutDuration(),
	}, logger)
	if err != nil {
		return err
	}

	conv, err := chat.New(chat.Config{
		Gateway:            gateway,
		Catalog:            provider,
		Logger:             logger,
		EnableWebGrounding: cfg.LLM.WebGrounding,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(conv), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat UI failed: %w", err)
	}
	return nil
}

// buildProvider assembles the catalog chain: SQLite or in-memory seed store,
// optional TTL cache, optional seed-file watcher.
func buildProvider(ctx context.Context, cfg config.CatalogConfig, logger *zap.Logger) (catalog.Provider, func(), error) {
	cleanup := func() {}

	if cfg.DatabasePath != "" {
		store, err := catalog.NewSQLiteStore(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		seedCtx, seedCancel := context.WithTimeout(ctx, 10*time.Second)
		defer seedCancel()
		if err := store.Seed(seedCtx, seedProducts(cfg)); err != nil {
			store.Close()
			return nil, nil, err
		}
		cleanup = func() { store.Close() }
		return wrapCache(store, cfg, nil), cleanup, nil
	}

	store := catalog.NewMemoryStore(seedProducts(cfg))
	var cached *catalog.CachedProvider
	provider := wrapCache(store, cfg, &cached)

	if cfg.Watch && cfg.SeedPath != "" {
		watcher, err := catalog.NewWatcher(cfg.SeedPath, store, logger)
		if err != nil {
			return nil, nil, err
		}
		if cached != nil {
			watcher.OnReload(cached.Invalidate)
		}
		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("seed watcher stopped", zap.Error(err))
			}
		}()
	}
	return provider, cleanup, nil
}

func wrapCache(inner catalog.Provider, cfg config.CatalogConfig, out **catalog.CachedProvider) catalog.Provider {
	ttl := cfg.CacheTTLDuration()
	if ttl <= 0 {
		return inner
	}
	c := catalog.NewCachedProvider(inner, ttl)
	if out != nil {
		*out = c
	}
	return c
}

func seedProducts(cfg config.CatalogConfig) []catalog.Product {
	if cfg.SeedPath == "" {
		return catalog.DefaultSeed()
	}
	products, err := catalog.LoadSeed(cfg.SeedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed load failed (%v), using built-in seed\n", err)
		return catalog.DefaultSeed()
	}
	return products
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
