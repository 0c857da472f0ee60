package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/RohanBisht33/trustscan-app/internal/analyze"
	"github.com/RohanBisht33/trustscan-app/internal/config"
	"github.com/RohanBisht33/trustscan-app/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the TrustScan REST API server",
	Long: `Start an HTTP server exposing the analyzer:

  POST /analyze   analyze inline text or a fetched URL
  POST /classify  classify text without scoring it
  POST /resume    score text as a resume
  GET  /health    liveness check

The port defaults to 8080 and can come from --port, a config file, or the
PORT environment variable.`,
	RunE: runServe,
}

const defaultPort = 8080

var (
	serveConfigPath string
	servePort       int
	serveProfile    string
	serveUseBrowser bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT env var, then 8080)")
	serveCmd.Flags().StringVarP(&serveProfile, "profile", "p", "", "Path to a scoring profile JSON file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = serveProfile
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = serveUseBrowser
	}

	if cfg.Port == 0 {
		if env := os.Getenv("PORT"); env != "" {
			port, err := strconv.Atoi(env)
			if err != nil {
				return fmt.Errorf("invalid PORT environment variable: %q", env)
			}
			cfg.Port = port
		}
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}

	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:       cfg.Port,
		Profile:    profile,
		UseBrowser: cfg.UseBrowser,
		CacheSize:  analyze.DefaultCacheLimit,
	})
	return srv.Start()
}
