package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/preset"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/server"
)

var (
	serveListen  string
	serveCatalog string
	serveAuthor  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a development sandbox API",
	Long: `Runs an in-memory sandbox API for local development.

The preset catalog is read from a TOML or YAML file. Relative catalog paths
are resolved inside the data directory. Without a catalog a single React
preset is served.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (default from config, \":8080\")")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Preset catalog file (.toml, .yaml)")
	serveCmd.Flags().StringVar(&serveAuthor, "author", "", "Username attached to created sandboxes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := serverConfig(current.Config.Server)

	catalog, err := loadCatalog(current.Paths.DataDir, cfg.Catalog)
	if err != nil {
		return err
	}

	srv := server.New(&server.Config{
		ListenAddr: cfg.Listen,
		Catalog:    catalog,
		Author:     cfg.Author,
		Logger:     logging.Logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logInfo("Serving sandbox API on %s%s", cfg.Listen, server.APIPrefix)
	return srv.ListenAndServe(ctx)
}

// serverConfig applies command-line flags over the config file.
func serverConfig(base config.ServerConfig) config.ServerConfig {
	cfg := base
	if serveListen != "" {
		cfg.Listen = serveListen
	}
	if serveCatalog != "" {
		cfg.Catalog = serveCatalog
	}
	if serveAuthor != "" {
		cfg.Author = serveAuthor
	}
	if cfg.Listen == "" {
		cfg.Listen = config.DefaultListen
	}
	return cfg
}

func loadCatalog(dataDir, name string) (*preset.Catalog, error) {
	if name == "" {
		return preset.DefaultCatalog(), nil
	}
	path, err := preset.ResolvePath(dataDir, name)
	if err != nil {
		return nil, errors.ConfigError("invalid catalog path", err)
	}
	catalog, err := preset.LoadCatalog(path)
	if err != nil {
		return nil, errors.ConfigError("failed to load preset catalog", err)
	}
	logging.Debug("catalog loaded", "path", path, "presets", len(catalog.Presets))
	return catalog, nil
}

