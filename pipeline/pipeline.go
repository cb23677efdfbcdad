// Package pipeline wires fetching, conversion, chunking, and entity
// extraction into a single document run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/newsdig/newsdig/config"
	"github.com/newsdig/newsdig/extract"
	"github.com/newsdig/newsdig/splitter"
	"github.com/newsdig/newsdig/webpage"
	"github.com/newsdig/newsdig/weburl"
)

// Report summarizes one pipeline run.
type Report struct {
	// DocID is the stable identifier derived from the URL.
	DocID string `json:"doc_id"`

	// URL is the document that was processed.
	URL string `json:"url"`

	// Title is the page title, if one was found.
	Title string `json:"title,omitempty"`

	// Chunks is the number of chunks the document was split into.
	Chunks int `json:"chunks"`

	// FailedChunks counts chunks whose extraction failed and was skipped.
	FailedChunks int `json:"failed_chunks"`

	// Result holds the merged entities.
	Result extract.Result `json:"result"`
}

// Pipeline runs the fetch → convert → chunk → extract → merge flow.
type Pipeline struct {
	cfg       *config.Config
	fetcher   *webpage.Fetcher
	converter *webpage.Converter
	splitter  *splitter.Splitter
	extractor *extract.Extractor
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithFetcher replaces the default fetcher.
func WithFetcher(f *webpage.Fetcher) Option {
	return func(p *Pipeline) {
		p.fetcher = f
	}
}

// New creates a pipeline from configuration.
func New(cfg *config.Config, extractor *extract.Extractor, opts ...Option) (*Pipeline, error) {
	split, err := splitter.New(splitter.Config{
		ChunkSize: cfg.Chunking.Size,
		Overlap:   cfg.Chunking.Overlap,
	})
	if err != nil {
		return nil, fmt.Errorf("configure splitter: %w", err)
	}

	p := &Pipeline{
		cfg: cfg,
		fetcher: webpage.NewFetcher(
			cfg.Source.Timeout,
			cfg.Source.UserAgent,
			// Raw HTML runs larger than the extracted text; allow headroom
			int64(cfg.Source.MaxContentChars)*20,
		),
		converter: webpage.NewConverter(),
		splitter:  split,
		extractor: extractor,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Run processes the document at urlStr and returns the merged entities.
// Individual chunk failures are logged and counted, not fatal; the run
// errors only when the document cannot be fetched or converted at all.
func (p *Pipeline) Run(ctx context.Context, urlStr string) (*Report, error) {
	docID := weburl.GenerateDocID(urlStr)

	p.logger.Info("Fetching document", "url", urlStr, "doc_id", docID)
	fetched, err := p.fetcher.Fetch(ctx, urlStr)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", urlStr, err)
	}

	pageURL, _ := url.Parse(urlStr)
	converted, err := p.converter.Convert(fetched.Body, pageURL)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", urlStr, err)
	}

	text := webpage.Truncate(converted.Text, p.cfg.Source.MaxContentChars)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text content extracted from %s", urlStr)
	}
	p.logger.Info("Document converted",
		"title", converted.Title,
		"chars", len(text))

	chunks := p.splitter.Split(docID, text)
	p.logger.Info("Document chunked", "chunks", len(chunks))

	report := &Report{
		DocID:  docID,
		URL:    urlStr,
		Title:  converted.Title,
		Chunks: len(chunks),
	}

	results := make([]extract.Result, 0, len(chunks))
	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := p.extractor.ExtractChunk(ctx, chunk.Content)
		if err != nil {
			report.FailedChunks++
			p.logger.Warn("Chunk extraction failed, skipping",
				"chunk", chunk.Index,
				"error", err)
			continue
		}
		results = append(results, result)
	}

	report.Result = extract.Merge(results)

	p.logger.Info("Extraction complete",
		"companies", len(report.Result.Companies),
		"persons", len(report.Result.Persons),
		"events", len(report.Result.Events),
		"failed_chunks", report.FailedChunks)

	return report, nil
}
