package indexer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ikyawthetpaing/webacademy/internal/content"
	"github.com/ikyawthetpaing/webacademy/internal/models"
	"github.com/ikyawthetpaing/webacademy/internal/render"
)

// indexPosts writes one full record per post, the slug-keyed summary
// index and the derived category registry.
func (ix *Indexer) indexPosts(sum *Summary) error {
	outDir := filepath.Join(ix.generatedDir, "post")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	docs := ix.loadDir(filepath.Join(ix.contentDir, "post"))

	var posts []models.Post
	for _, doc := range docs {
		post, ok := ix.buildPost(doc)
		if !ok {
			continue
		}
		posts = append(posts, post)
	}

	// Newest first; ties keep file-name discovery order.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt().After(posts[j].PublishedAt())
	})

	index := map[string]models.PostSummary{}
	categories := map[string]string{}
	for _, post := range posts {
		if err := ix.writeJSON(filepath.Join(outDir, post.Slug+".json"), post); err != nil {
			return err
		}
		index[post.Slug] = post.PostSummary

		// First occurrence of a category wins the display name.
		if slug := content.Slugify(post.Category); slug != "" {
			if _, seen := categories[slug]; !seen {
				categories[slug] = post.Category
			}
		}
	}

	// Aggregate writes happen after every item file is on disk.
	if err := ix.writeJSON(filepath.Join(outDir, "index.json"), index); err != nil {
		return err
	}
	if err := ix.writeJSON(filepath.Join(outDir, "categories.json"), categories); err != nil {
		return err
	}

	sum.Posts = len(posts)
	sum.Categories = len(categories)
	return nil
}

func (ix *Indexer) buildPost(doc document) (models.Post, bool) {
	title := doc.meta.String("title")
	date := doc.meta.String("date")
	if title == "" || date == "" {
		ix.skip(fmt.Sprintf("post/%s.mdx", doc.slug), fmt.Errorf("missing required field (title/date)"))
		return models.Post{}, false
	}

	html, err := render.Markdown(doc.body)
	if err != nil {
		ix.skip(fmt.Sprintf("post/%s.mdx", doc.slug), err)
		return models.Post{}, false
	}

	return models.Post{
		PostSummary: models.PostSummary{
			Slug:        doc.slug,
			Title:       title,
			Description: doc.meta.String("description"),
			Category:    doc.meta.String("category"),
			Thumbnail:   doc.meta.String("thumbnail"),
			Date:        date,
			Featured:    doc.meta.Bool("featured"),
			Author:      doc.meta.String("author"),
		},
		Content:     doc.body,
		ContentHTML: html,
	}, true
}
