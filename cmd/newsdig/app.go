package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/newsdig/newsdig/config"
	"github.com/newsdig/newsdig/extract"
	"github.com/newsdig/newsdig/llm"
	"github.com/newsdig/newsdig/model"
	"github.com/newsdig/newsdig/output"
	"github.com/newsdig/newsdig/pipeline"
)

// runExtraction wires the model registry, LLM client, and pipeline together,
// runs one extraction, prints a summary, and writes the JSON results file.
func runExtraction(ctx context.Context, cfg *config.Config, url string) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	registry := buildRegistry(cfg)

	httpTimeout := cfg.Model.Timeout
	if httpTimeout <= 0 {
		httpTimeout = 5 * time.Minute
	}
	client := llm.NewClient(registry,
		llm.WithLogger(slog.Default()),
		llm.WithHTTPClient(newLLMHTTPClient(httpTimeout)))

	extractor := extract.NewExtractor(client,
		extract.WithTemperature(cfg.Model.Temperature),
		extract.WithLogger(slog.Default()))

	p, err := pipeline.New(cfg, extractor, pipeline.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	report, err := p.Run(ctx, url)
	if err != nil {
		return err
	}

	printSummary(report)

	if err := writeResults(cfg.Output.Path, report); err != nil {
		return err
	}
	fmt.Printf("\nResults saved to %s\n", cfg.Output.Path)

	return nil
}

// writeResults persists the merged entities. The results file carries only
// the companies/persons/events record; run metadata stays on the console.
func writeResults(path string, report *pipeline.Report) error {
	return output.WriteJSON(path, report.Result)
}

// newLLMHTTPClient builds the HTTP client for LLM calls with the configured
// response timeout.
func newLLMHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// buildRegistry creates a model registry from config. The configured model
// becomes the preferred choice for extraction; the stock registry supplies
// the fallback chain.
func buildRegistry(cfg *config.Config) *model.Registry {
	registry := model.NewDefaultRegistry()

	registry.SetEndpoint(cfg.Model.Default, &model.EndpointConfig{
		Provider: cfg.Model.Provider,
		URL:      cfg.Model.Endpoint,
		Model:    cfg.Model.Default,
	})
	registry.SetCapability(model.CapabilityExtraction, &model.CapabilityConfig{
		Description: "Structured entity extraction from document chunks",
		Preferred:   []string{cfg.Model.Default},
		Fallback:    registry.GetFallbackChain(model.CapabilityExtraction),
	})
	registry.SetDefault(cfg.Model.Default)

	return registry
}

func printSummary(report *pipeline.Report) {
	fmt.Println()
	fmt.Println("============================================================")
	fmt.Println("EXTRACTION RESULTS")
	fmt.Println("============================================================")
	if report.Title != "" {
		fmt.Printf("\nDocument: %s\n", report.Title)
	}
	fmt.Printf("Chunks processed: %d", report.Chunks-report.FailedChunks)
	if report.FailedChunks > 0 {
		fmt.Printf(" (%d failed)", report.FailedChunks)
	}
	fmt.Println()

	printList("Persons", report.Result.Persons)
	printList("Companies", report.Result.Companies)
	printList("Events", report.Result.Events)
}

func printList(label string, items []string) {
	fmt.Printf("\n%s (%d):\n", label, len(items))
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}
