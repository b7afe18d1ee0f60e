// Package indexer implements the offline build step: it walks the MDX
// content tree and materializes the generated JSON snapshot the server
// reads at request time.
package indexer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ikyawthetpaing/webacademy/internal/content"

	"go.uber.org/zap"
)

type Indexer struct {
	contentDir   string
	generatedDir string
	log          *zap.Logger

	mu      sync.Mutex
	skipped []string
}

// Summary is the result of one indexing run.
type Summary struct {
	Posts      int
	Pages      int
	Authors    int
	Courses    int
	Chapters   int
	Categories int
	Skipped    []string
}

func New(contentDir, generatedDir string, log *zap.Logger) *Indexer {
	return &Indexer{
		contentDir:   contentDir,
		generatedDir: generatedDir,
		log:          log,
	}
}

// Run indexes all collections. Collections write disjoint output
// directories and run concurrently; each collection's aggregate index is
// written only after its item files. Per-file errors are skipped with a
// warning; a duplicate chapter ordinal is fatal.
func (ix *Indexer) Run() (*Summary, error) {
	if err := os.MkdirAll(ix.generatedDir, 0o755); err != nil {
		return nil, fmt.Errorf("create generated dir: %w", err)
	}

	sum := &Summary{}
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error

	collect := func(name string, fn func(*Summary) error) {
		defer wg.Done()
		local := &Summary{}
		err := fn(local)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			return
		}
		sum.Posts += local.Posts
		sum.Pages += local.Pages
		sum.Authors += local.Authors
		sum.Courses += local.Courses
		sum.Chapters += local.Chapters
		sum.Categories += local.Categories
	}

	wg.Add(4)
	go collect("posts", ix.indexPosts)
	go collect("pages", ix.indexPages)
	go collect("authors", ix.indexAuthors)
	go collect("courses", ix.indexCourses)
	wg.Wait()

	if len(errs) > 0 {
		return nil, errs[0]
	}

	sum.Skipped = append(sum.Skipped, ix.skipped...)
	return sum, nil
}

// document is one parsed content file.
type document struct {
	slug string
	meta content.Metadata
	body string
}

// loadDir parses every .mdx file in dir, in file-name order. Files
// without a frontmatter block are skipped with a warning.
func (ix *Indexer) loadDir(dir string) []document {
	entries, err := os.ReadDir(dir)
	if err != nil {
		ix.log.Warn("content directory unreadable", zap.String("dir", dir), zap.Error(err))
		return nil
	}

	var docs []document
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".mdx" {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		raw, err := os.ReadFile(path)
		if err != nil {
			ix.skip(path, err)
			continue
		}
		meta, body, err := content.ParseFrontmatter(string(raw))
		if err != nil {
			ix.skip(path, err)
			continue
		}

		slug := strings.TrimSuffix(entry.Name(), ".mdx")
		docs = append(docs, document{slug: slug, meta: meta, body: body})
	}
	return docs
}

func (ix *Indexer) skip(path string, err error) {
	ix.log.Warn("skipping content file", zap.String("file", path), zap.Error(err))
	ix.mu.Lock()
	ix.skipped = append(ix.skipped, path)
	ix.mu.Unlock()
}

func (ix *Indexer) writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// listDirectories returns subdirectory names of dir in name order.
func listDirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			out = append(out, entry.Name())
		}
	}
	return out, nil
}
