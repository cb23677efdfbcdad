// Package extract pulls structured entities out of document text using an LLM.
// Each chunk of a document yields a Result; Merge consolidates chunk results
// into a single deduplicated Result preserving first-seen order.
package extract

import "strings"

// Result holds the entities extracted from a document or chunk.
type Result struct {
	// Companies lists organizations, companies, or institutional entities.
	Companies []string `json:"companies"`

	// Persons lists full names of individuals.
	Persons []string `json:"persons"`

	// Events lists notable events, resolutions, or agreements.
	Events []string `json:"events"`
}

// Empty reports whether the result contains no entities.
func (r Result) Empty() bool {
	return len(r.Companies) == 0 && len(r.Persons) == 0 && len(r.Events) == 0
}

// Merge consolidates per-chunk results into one, removing duplicates while
// preserving first-seen order. Entity comparison is case-insensitive after
// trimming whitespace; the stored value is the trimmed first occurrence.
func Merge(results []Result) Result {
	var companies, persons, events []string
	for _, r := range results {
		companies = append(companies, r.Companies...)
		persons = append(persons, r.Persons...)
		events = append(events, r.Events...)
	}

	return Result{
		Companies: deduplicate(companies),
		Persons:   deduplicate(persons),
		Events:    deduplicate(events),
	}
}

// deduplicate removes duplicate entries, keeping the trimmed first occurrence.
func deduplicate(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	unique := make([]string, 0, len(items))

	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		key := strings.ToLower(trimmed)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, trimmed)
	}

	return unique
}
