package content

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformedContent reports a content file without a frontmatter block.
var ErrMalformedContent = errors.New("frontmatter block not found")

// Metadata is the typed key/value mapping extracted from a frontmatter
// block. Values are float64, bool or string depending on coercion.
type Metadata map[string]any

var frontmatterRe = regexp.MustCompile(`(?s)---\s*(.*?)\s*---`)

// ParseFrontmatter splits raw file text into metadata and the trimmed body.
// The metadata block must be delimited by --- lines; each line inside is a
// "key: value" pair.
func ParseFrontmatter(raw string) (Metadata, string, error) {
	loc := frontmatterRe.FindStringSubmatchIndex(raw)
	if loc == nil {
		return nil, "", ErrMalformedContent
	}

	block := raw[loc[2]:loc[3]]
	body := strings.TrimSpace(raw[:loc[0]] + raw[loc[1]:])

	meta := Metadata{}
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		meta[key] = coerceValue(strings.TrimSpace(value))
	}

	return meta, body, nil
}

// coerceValue applies the frontmatter typing rules: a fully numeric value
// becomes a float, true/false (any case) becomes a bool, anything else
// stays a string with one layer of matching surrounding quotes stripped.
func coerceValue(value string) any {
	if value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	return unquote(value)
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// EncodeFrontmatter renders metadata back into a delimited block with keys
// in sorted order, so encoding is deterministic.
func EncodeFrontmatter(meta Metadata) string {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("---\n")
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(formatValue(meta[k]))
		b.WriteString("\n")
	}
	b.WriteString("---")
	return b.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case string:
		// A string that parsing would coerce, unquote or trim must be
		// quoted so decoding yields the string back.
		if s, ok := coerceValue(x).(string); !ok || s != x || x != strings.TrimSpace(x) {
			return `"` + x + `"`
		}
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

// String returns the value for key as a string, or "" when absent or not
// a string.
func (m Metadata) String(key string) string {
	s, _ := m[key].(string)
	return s
}

// Float returns the value for key as a float64 and whether it was present
// as a number.
func (m Metadata) Float(key string) (float64, bool) {
	f, ok := m[key].(float64)
	return f, ok
}

// Int returns the value for key truncated to int and whether it was
// present as a number.
func (m Metadata) Int(key string) (int, bool) {
	f, ok := m[key].(float64)
	return int(f), ok
}

// Bool returns the value for key as a bool; absent or non-bool is false.
func (m Metadata) Bool(key string) bool {
	b, _ := m[key].(bool)
	return b
}
