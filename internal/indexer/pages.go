package indexer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ikyawthetpaing/webacademy/internal/models"
	"github.com/ikyawthetpaing/webacademy/internal/render"
)

func (ix *Indexer) indexPages(sum *Summary) error {
	outDir := filepath.Join(ix.generatedDir, "page")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, doc := range ix.loadDir(filepath.Join(ix.contentDir, "page")) {
		title := doc.meta.String("title")
		if title == "" {
			ix.skip(fmt.Sprintf("page/%s.mdx", doc.slug), fmt.Errorf("missing required field (title)"))
			continue
		}

		html, err := render.Markdown(doc.body)
		if err != nil {
			ix.skip(fmt.Sprintf("page/%s.mdx", doc.slug), err)
			continue
		}

		page := models.Page{
			Slug:        doc.slug,
			Title:       title,
			Description: doc.meta.String("description"),
			Content:     doc.body,
			ContentHTML: html,
		}
		if err := ix.writeJSON(filepath.Join(outDir, page.Slug+".json"), page); err != nil {
			return err
		}
		sum.Pages++
	}
	return nil
}

func (ix *Indexer) indexAuthors(sum *Summary) error {
	outDir := filepath.Join(ix.generatedDir, "author")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, doc := range ix.loadDir(filepath.Join(ix.contentDir, "author")) {
		name := doc.meta.String("name")
		if name == "" {
			ix.skip(fmt.Sprintf("author/%s.mdx", doc.slug), fmt.Errorf("missing required field (name)"))
			continue
		}

		author := models.Author{
			Slug:    doc.slug,
			Name:    name,
			Avatar:  doc.meta.String("avatar"),
			Role:    doc.meta.String("role"),
			Website: doc.meta.String("website"),
			Content: doc.body,
		}
		if err := ix.writeJSON(filepath.Join(outDir, author.Slug+".json"), author); err != nil {
			return err
		}
		sum.Authors++
	}
	return nil
}
