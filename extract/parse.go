package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/newsdig/newsdig/llm"
)

// fieldAliases maps canonical field names to the alternate keys models
// produce, especially when the source document is not in English.
var fieldAliases = map[string][]string{
	"persons":   {"persons", "personas", "people", "individuos"},
	"companies": {"companies", "empresas", "organizations", "organizaciones"},
	"events":    {"events", "eventos", "hechos", "acontecimientos"},
}

// ParseResult parses an LLM response into a Result. It tolerates markdown
// code fences, comments, trailing commas, aliased field names, and scalar
// values where arrays were expected. Malformed JSON gets one repair pass
// before giving up.
func ParseResult(content string) (Result, error) {
	jsonStr := llm.ExtractJSON(content)
	if jsonStr == "" {
		return Result{}, fmt.Errorf("no JSON found in response")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		repaired := llm.RepairJSON(content)
		if repaired == "" {
			return Result{}, fmt.Errorf("invalid JSON response: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
			return Result{}, fmt.Errorf("invalid JSON response after repair: %w", err)
		}
	}

	return normalize(payload), nil
}

// normalize maps aliased keys onto the canonical Result fields.
func normalize(payload map[string]any) Result {
	lowered := make(map[string]any, len(payload))
	for key, value := range payload {
		lowered[strings.ToLower(key)] = value
	}

	pick := func(field string) []string {
		for _, alias := range fieldAliases[field] {
			if value, ok := lowered[alias]; ok {
				return coerceList(value)
			}
		}
		return nil
	}

	return Result{
		Companies: pick("companies"),
		Persons:   pick("persons"),
		Events:    pick("events"),
	}
}

// coerceList converts a JSON value into a list of non-empty trimmed strings.
// Models occasionally return a bare string or number instead of an array.
func coerceList(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(stringify(item)); s != "" {
				items = append(items, s)
			}
		}
		return items
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
		return nil
	default:
		if s := strings.TrimSpace(stringify(v)); s != "" {
			return []string{s}
		}
		return nil
	}
}

// stringify renders a JSON scalar as a string.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		// Avoid the "%!s(float64=...)" formatting trap
		b, _ := json.Marshal(v)
		return string(b)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return ""
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}
