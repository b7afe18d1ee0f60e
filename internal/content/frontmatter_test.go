package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter(t *testing.T) {
	raw := `---
title: "Hello World"
date: 2024-03-01
index: 3
featured: TRUE
draft: false
description: A post about things: mostly Go
---

# Heading

Body text here.`

	meta, body, err := ParseFrontmatter(raw)
	require.NoError(t, err)

	assert.Equal(t, "Hello World", meta["title"])
	assert.Equal(t, "2024-03-01", meta["date"])
	assert.Equal(t, float64(3), meta["index"])
	assert.Equal(t, true, meta["featured"])
	assert.Equal(t, false, meta["draft"])
	assert.Equal(t, "A post about things: mostly Go", meta["description"])
	assert.Equal(t, "# Heading\n\nBody text here.", body)
}

func TestParseFrontmatterQuotes(t *testing.T) {
	meta, _, err := ParseFrontmatter("---\ntitle: 'Single quoted'\nplain: no quotes\nhalf: \"mismatched'\n---\nbody")
	require.NoError(t, err)

	assert.Equal(t, "Single quoted", meta["title"])
	assert.Equal(t, "no quotes", meta["plain"])
	// Mismatched quotes stay untouched.
	assert.Equal(t, "\"mismatched'", meta["half"])
}

func TestParseFrontmatterMalformed(t *testing.T) {
	_, _, err := ParseFrontmatter("# Just a markdown file\n\nNo metadata block at all.")
	assert.ErrorIs(t, err, ErrMalformedContent)

	_, _, err = ParseFrontmatter("---\ntitle: unclosed block\n")
	assert.ErrorIs(t, err, ErrMalformedContent)
}

func TestParseFrontmatterEmptyValue(t *testing.T) {
	// With and without a trailing space after the colon.
	for _, raw := range []string{
		"---\nthumbnail: \n---\nbody",
		"---\nthumbnail:\n---\nbody",
	} {
		meta, _, err := ParseFrontmatter(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, "", meta["thumbnail"], raw)
	}
}

func TestParseFrontmatterIgnoresSeparatorlessLines(t *testing.T) {
	meta, _, err := ParseFrontmatter("---\ntitle: T\nnot a pair\n---\nbody")
	require.NoError(t, err)
	assert.Equal(t, Metadata{"title": "T"}, meta)
}

func TestFrontmatterRoundTrip(t *testing.T) {
	original := Metadata{
		"title":    "Round Trip",
		"index":    float64(2),
		"featured": true,
		"category": "Coding Tips",
	}

	encoded := EncodeFrontmatter(original)
	meta, body, err := ParseFrontmatter(encoded + "\nsome body")
	require.NoError(t, err)

	assert.Equal(t, original, meta)
	assert.Equal(t, "some body", body)

	// Encoding is deterministic.
	assert.Equal(t, encoded, EncodeFrontmatter(meta))
}

func TestFrontmatterRoundTripScalarLookingStrings(t *testing.T) {
	// Strings that parsing would coerce to numbers or bools must come
	// back as the same strings, not as floats or bools.
	original := Metadata{
		"version": "5",
		"active":  "true",
		"padded":  " spaced ",
		"quoted":  `"kept"`,
	}

	meta, _, err := ParseFrontmatter(EncodeFrontmatter(original) + "\nbody")
	require.NoError(t, err)
	assert.Equal(t, original, meta)
}

func TestMetadataAccessors(t *testing.T) {
	meta := Metadata{"title": "T", "index": float64(4), "featured": true}

	assert.Equal(t, "T", meta.String("title"))
	assert.Equal(t, "", meta.String("missing"))

	n, ok := meta.Int("index")
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = meta.Int("title")
	assert.False(t, ok)

	assert.True(t, meta.Bool("featured"))
	assert.False(t, meta.Bool("missing"))
}
