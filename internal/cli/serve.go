package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/server"
)

var (
	serveAddr     string
	serveProvider string
	serveModel    string
	serveNoCache  bool
	serveJSONLogs bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the verification HTTP API",
	Long: `Serve starts the HTTP API.

Endpoints:
  POST /verify   verify a batch of claimed internships
  GET  /healthz  liveness probe

A quota failure in the search backend returns 429 so clients know to retry
later; any other failure returns 500.

Example:
  trustsignal serve --addr 127.0.0.1:8000 --provider gemini`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default 127.0.0.1:8000)")
	serveCmd.Flags().StringVar(&serveProvider, "provider", "", "search provider (gemini, openai)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "search provider model name")
	serveCmd.Flags().BoolVar(&serveNoCache, "no-cache", false, "disable the query cache")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "emit JSON logs")

	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("search.provider", serveCmd.Flags().Lookup("provider"))
	_ = viper.BindPFlag("search.model", serveCmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("server.json_logs", serveCmd.Flags().Lookup("json-logs"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if serveNoCache {
		cfg.Cache.Enabled = false
	}

	if err := resolveAPIKey(cfg); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service, err := buildService(ctx, cfg, log)
	if err != nil {
		return err
	}

	router := server.New(service, log)
	return server.Run(ctx, cfg.Server.Addr, router, log)
}
