// Package main provides the newsdig binary entry point.
// Newsdig fetches a web document, splits it into overlapping chunks,
// and extracts companies, persons, and events with a local LLM.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	// Register LLM providers via init()
	_ "github.com/newsdig/newsdig/llm/providers"

	"github.com/newsdig/newsdig/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "newsdig"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	// Load .env if present; API keys for remote providers live there
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		outputPath string
		modelName  string
		provider   string
		endpoint   string
		chunkSize  int
		overlap    int
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "newsdig [url]",
		Short: "Extract structured entities from web documents",
		Long: `Newsdig fetches a web document, converts it to clean text, splits it
into overlapping chunks, and runs each chunk through a local LLM to
extract companies, persons, and events. Results are deduplicated across
chunks and written as JSON.

The LLM endpoint defaults to a local Ollama server; any OpenAI-compatible
API works.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(logLevel)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Flags override file config
			if outputPath != "" {
				cfg.Output.Path = outputPath
			}
			if modelName != "" {
				cfg.Model.Default = modelName
			}
			if provider != "" {
				cfg.Model.Provider = provider
			}
			if endpoint != "" {
				cfg.Model.Endpoint = endpoint
			}
			if chunkSize > 0 {
				cfg.Chunking.Size = chunkSize
			}
			if cmd.Flags().Changed("overlap") {
				cfg.Chunking.Overlap = overlap
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			url := cfg.Source.URL
			if len(args) == 1 {
				url = args[0]
			}
			if url == "" {
				return fmt.Errorf("no URL given and source.url is not configured")
			}

			return runExtraction(cmd.Context(), cfg, url)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON file (default from config)")
	cmd.Flags().StringVarP(&modelName, "model", "m", "", "Model name (e.g., gpt-oss:latest)")
	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider (ollama, openai, anthropic)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "LLM API endpoint")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "Characters per chunk")
	cmd.Flags().IntVar(&overlap, "overlap", 0, "Characters shared between adjacent chunks")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	// Config command
	cmd.AddCommand(configCmd())

	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging("warn")

			cfg, err := config.NewLoader(slog.Default()).Load()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a default user config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging("info")
			return config.NewLoader(slog.Default()).EnsureUserConfig()
		},
	})

	return cmd
}

func setupLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromFile(configPath)
	}
	return config.NewLoader(slog.Default()).Load()
}
