package indexer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ikyawthetpaing/webacademy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// writeContentTree lays out a small but complete content source tree.
func writeContentTree(t *testing.T, dir string) {
	t.Helper()

	writeFile(t, filepath.Join(dir, "post", "new-post.mdx"), `---
title: Newest Post
description: The newest one
category: Coding Tips
date: 2024-03-01
featured: true
author: jane
---
Newest **body**.`)

	writeFile(t, filepath.Join(dir, "post", "old-post.mdx"), `---
title: Oldest Post
category: coding-tips
date: 2024-01-15
author: jane
---
Oldest body.`)

	writeFile(t, filepath.Join(dir, "post", "mid-post.mdx"), `---
title: Middle Post
category: Design & Trends
date: 2024-02-10
author: jane
---
Middle body.`)

	// No frontmatter block: must be skipped, not fail the run.
	writeFile(t, filepath.Join(dir, "post", "broken.mdx"), "just a body, no metadata")

	writeFile(t, filepath.Join(dir, "page", "about.mdx"), `---
title: About
description: About the site
---
About body.`)

	writeFile(t, filepath.Join(dir, "author", "jane.mdx"), `---
name: Jane Doe
role: Instructor
website: https://example.com
---
Bio.`)

	writeFile(t, filepath.Join(dir, "course", "html", "index.mdx"), `---
title: HTML Course
index: 1
icon: html
---
Welcome to HTML.`)

	// File names deliberately disagree with ordinal order.
	writeFile(t, filepath.Join(dir, "course", "html", "chapter", "a-later.mdx"), `---
title: Later Chapter
index: 2
---
Later.`)
	writeFile(t, filepath.Join(dir, "course", "html", "chapter", "b-earlier.mdx"), `---
title: Earlier Chapter
index: 1
---
Earlier.`)
}

func runIndexer(t *testing.T, contentDir, generatedDir string) *Summary {
	t.Helper()
	ix := New(contentDir, generatedDir, zap.NewNop())
	summary, err := ix.Run()
	require.NoError(t, err)
	return summary
}

func TestRunProducesSnapshot(t *testing.T) {
	contentDir := t.TempDir()
	generatedDir := t.TempDir()
	writeContentTree(t, contentDir)

	summary := runIndexer(t, contentDir, generatedDir)

	assert.Equal(t, 3, summary.Posts)
	assert.Equal(t, 1, summary.Pages)
	assert.Equal(t, 1, summary.Authors)
	assert.Equal(t, 1, summary.Courses)
	assert.Equal(t, 3, summary.Chapters) // landing + 2 authored
	assert.Len(t, summary.Skipped, 1)

	for _, path := range []string{
		"post/new-post.json",
		"post/index.json",
		"post/categories.json",
		"page/about.json",
		"author/jane.json",
		"course/index.json",
		"course/html/index.json",
		"course/html/chapter/index.json",
		"course/html/chapter/a-later.json",
		"course/html/chapter/b-earlier.json",
	} {
		_, err := os.Stat(filepath.Join(generatedDir, path))
		assert.NoError(t, err, path)
	}

	// Skipped files never produce output.
	_, err := os.Stat(filepath.Join(generatedDir, "post", "broken.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunFullPostRecord(t *testing.T) {
	contentDir := t.TempDir()
	generatedDir := t.TempDir()
	writeContentTree(t, contentDir)
	runIndexer(t, contentDir, generatedDir)

	data, err := os.ReadFile(filepath.Join(generatedDir, "post", "new-post.json"))
	require.NoError(t, err)

	var post models.Post
	require.NoError(t, json.Unmarshal(data, &post))

	assert.Equal(t, "new-post", post.Slug)
	assert.Equal(t, "Newest Post", post.Title)
	assert.Equal(t, "Coding Tips", post.Category)
	assert.True(t, post.Featured)
	assert.Equal(t, "Newest **body**.", post.Content)
	assert.Contains(t, post.ContentHTML, "<strong>body</strong>")
}

func TestRunCategoryRegistry(t *testing.T) {
	contentDir := t.TempDir()
	generatedDir := t.TempDir()
	writeContentTree(t, contentDir)
	runIndexer(t, contentDir, generatedDir)

	data, err := os.ReadFile(filepath.Join(generatedDir, "post", "categories.json"))
	require.NoError(t, err)

	categories := map[string]string{}
	require.NoError(t, json.Unmarshal(data, &categories))

	// "Coding Tips" and "coding-tips" dedupe onto one slug; the newest
	// post is indexed first, so its spelling wins the display name.
	assert.Equal(t, map[string]string{
		"coding-tips":       "Coding Tips",
		"design-and-trends": "Design & Trends",
	}, categories)
}

func TestRunChapterOrdering(t *testing.T) {
	contentDir := t.TempDir()
	generatedDir := t.TempDir()
	writeContentTree(t, contentDir)
	runIndexer(t, contentDir, generatedDir)

	data, err := os.ReadFile(filepath.Join(generatedDir, "course", "html", "index.json"))
	require.NoError(t, err)

	var index models.CourseIndex
	require.NoError(t, json.Unmarshal(data, &index))

	assert.Equal(t, "HTML Course", index.Metadata.Title)
	require.Len(t, index.Chapters, 3)

	assert.Equal(t, models.ChapterSummary{Slug: "html", Index: 0, Title: "HTML Course"}, index.Chapters["html"])
	assert.Equal(t, models.ChapterSummary{Slug: "html/b-earlier", Index: 1, Title: "Earlier Chapter"}, index.Chapters["html/b-earlier"])
	assert.Equal(t, models.ChapterSummary{Slug: "html/a-later", Index: 2, Title: "Later Chapter"}, index.Chapters["html/a-later"])
}

func TestRunIsDeterministic(t *testing.T) {
	contentDir := t.TempDir()
	writeContentTree(t, contentDir)

	first := t.TempDir()
	second := t.TempDir()
	runIndexer(t, contentDir, first)
	runIndexer(t, contentDir, second)

	for _, rel := range []string{
		"post/index.json",
		"post/categories.json",
		"post/new-post.json",
		"course/index.json",
		"course/html/index.json",
	} {
		a, err := os.ReadFile(filepath.Join(first, rel))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(second, rel))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), rel)
	}
}

func TestRunDuplicateChapterOrdinalFails(t *testing.T) {
	contentDir := t.TempDir()
	writeContentTree(t, contentDir)
	writeFile(t, filepath.Join(contentDir, "course", "html", "chapter", "dup.mdx"), `---
title: Duplicate Ordinal
index: 1
---
Dup.`)

	ix := New(contentDir, t.TempDir(), zap.NewNop())
	_, err := ix.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate chapter ordinal")
}

func TestRunChapterOrdinalZeroCollidesWithLanding(t *testing.T) {
	contentDir := t.TempDir()
	writeContentTree(t, contentDir)
	writeFile(t, filepath.Join(contentDir, "course", "html", "chapter", "zero.mdx"), `---
title: Claims The Landing Ordinal
index: 0
---
Zero.`)

	ix := New(contentDir, t.TempDir(), zap.NewNop())
	_, err := ix.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate chapter ordinal 0")
}

func TestRunReservedChapterFileNameFails(t *testing.T) {
	contentDir := t.TempDir()
	writeContentTree(t, contentDir)
	writeFile(t, filepath.Join(contentDir, "course", "html", "chapter", "index.mdx"), `---
title: Shadows The Landing
index: 9
---
Shadow.`)

	ix := New(contentDir, t.TempDir(), zap.NewNop())
	_, err := ix.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved for the landing chapter")
}

func TestRunSkipsMissingRequiredFields(t *testing.T) {
	contentDir := t.TempDir()
	writeFile(t, filepath.Join(contentDir, "post", "undated.mdx"), `---
title: Missing Date
category: Misc
---
Body.`)

	generatedDir := t.TempDir()
	summary := runIndexer(t, contentDir, generatedDir)

	assert.Equal(t, 0, summary.Posts)
	assert.Len(t, summary.Skipped, 1)
}
