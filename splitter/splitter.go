// Package splitter divides document text into overlapping fixed-size chunks
// so each model prompt stays within the context window while preserving
// context across chunk boundaries.
package splitter

import "fmt"

// Config holds splitting configuration.
type Config struct {
	// ChunkSize is the maximum chunk length in characters (runes).
	ChunkSize int

	// Overlap is how many characters adjacent chunks share.
	Overlap int
}

// DefaultConfig returns sensible splitting defaults.
func DefaultConfig() Config {
	return Config{
		ChunkSize: 2000,
		Overlap:   100,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("ChunkSize must be positive, got %d", c.ChunkSize)
	}
	if c.Overlap < 0 {
		return fmt.Errorf("Overlap must not be negative, got %d", c.Overlap)
	}
	if c.Overlap >= c.ChunkSize {
		return fmt.Errorf("Overlap (%d) must be less than ChunkSize (%d)", c.Overlap, c.ChunkSize)
	}
	return nil
}

// Chunk is a contiguous slice of the source text.
// Adjacent chunks share Overlap characters.
type Chunk struct {
	// DocID is the ID of the source document.
	DocID string `json:"doc_id"`

	// Index is the chunk sequence number (0-indexed).
	Index int `json:"index"`

	// Start is the rune offset of the chunk in the source text.
	Start int `json:"start"`

	// Content is the chunk text.
	Content string `json:"content"`
}

// Splitter splits text into overlapping chunks.
type Splitter struct {
	config Config
}

// New creates a new Splitter with the given configuration.
// Returns an error if the configuration is invalid.
func New(cfg Config) (*Splitter, error) {
	if cfg.ChunkSize == 0 && cfg.Overlap == 0 {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Splitter{config: cfg}, nil
}

// MustNew creates a new Splitter, panicking on invalid config.
// Use for known-good configurations.
func MustNew(cfg Config) *Splitter {
	s, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// NewDefault creates a Splitter with default configuration.
func NewDefault() *Splitter {
	return MustNew(DefaultConfig())
}

// Split divides text into overlapping chunks. Offsets are rune-based so a
// "character" matches user expectations for accented text.
// Empty text yields no chunks.
func (s *Splitter) Split(docID, text string) []Chunk {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	stride := s.config.ChunkSize - s.config.Overlap

	var chunks []Chunk
	for start := 0; start < len(runes); start += stride {
		end := start + s.config.ChunkSize
		if end > len(runes) {
			end = len(runes)
		}

		chunks = append(chunks, Chunk{
			DocID:   docID,
			Index:   len(chunks),
			Start:   start,
			Content: string(runes[start:end]),
		})

		// The final chunk reaches the end of the text; advancing by stride
		// from here would only produce a chunk fully inside this one.
		if end == len(runes) {
			break
		}
	}

	return chunks
}
