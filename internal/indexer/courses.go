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

// indexCourses builds the two-level course structure: the ordered course
// list, one chapter-summary index per course, and one record per chapter.
// The course's own index.mdx becomes its landing chapter, keyed by the
// bare course slug.
func (ix *Indexer) indexCourses(sum *Summary) error {
	outDir := filepath.Join(ix.generatedDir, "course")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	srcDir := filepath.Join(ix.contentDir, "course")
	courseDirs, err := listDirectories(srcDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var courses []models.CourseMetadata
	for _, courseSlug := range courseDirs {
		meta, err := ix.indexCourse(srcDir, outDir, courseSlug, sum)
		if err != nil {
			return err
		}
		if meta == nil {
			continue
		}
		courses = append(courses, *meta)
	}

	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].Index < courses[j].Index
	})
	if err := ix.writeJSON(filepath.Join(outDir, "index.json"), courses); err != nil {
		return err
	}

	sum.Courses = len(courses)
	return nil
}

func (ix *Indexer) indexCourse(srcDir, outDir, courseSlug string, sum *Summary) (*models.CourseMetadata, error) {
	chapterOutDir := filepath.Join(outDir, courseSlug, "chapter")
	if err := os.MkdirAll(chapterOutDir, 0o755); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filepath.Join(srcDir, courseSlug, "index.mdx"))
	if err != nil {
		ix.skip(fmt.Sprintf("course/%s/index.mdx", courseSlug), err)
		return nil, nil
	}
	meta, body, err := content.ParseFrontmatter(string(raw))
	if err != nil {
		ix.skip(fmt.Sprintf("course/%s/index.mdx", courseSlug), err)
		return nil, nil
	}

	title := meta.String("title")
	ordinal, hasOrdinal := meta.Int("index")
	if title == "" || !hasOrdinal {
		ix.skip(fmt.Sprintf("course/%s/index.mdx", courseSlug), fmt.Errorf("missing required field (title/index)"))
		return nil, nil
	}

	courseMeta := models.CourseMetadata{
		Slug:        courseSlug,
		Index:       ordinal,
		Title:       title,
		Icon:        meta.String("icon"),
		Description: meta.String("description"),
	}

	chapters, err := ix.buildChapters(courseSlug, body, title)
	if err != nil {
		return nil, err
	}

	index := models.CourseIndex{
		Metadata: courseMeta,
		Chapters: map[string]models.ChapterSummary{},
	}
	for _, chapter := range chapters {
		name := chapterFileName(courseSlug, chapter.Slug)
		if err := ix.writeJSON(filepath.Join(chapterOutDir, name+".json"), chapter); err != nil {
			return nil, err
		}
		index.Chapters[chapter.Slug] = chapter.ChapterSummary
		sum.Chapters++
	}

	if err := ix.writeJSON(filepath.Join(outDir, courseSlug, "index.json"), index); err != nil {
		return nil, err
	}
	return &courseMeta, nil
}

// buildChapters parses a course's chapter files, prepends the landing
// chapter built from the course body, and sorts by ordinal. A duplicate
// ordinal within a course is fatal: chapter ordering depends on it.
func (ix *Indexer) buildChapters(courseSlug, landingBody, landingTitle string) ([]models.Chapter, error) {
	landingHTML, err := render.Markdown(landingBody)
	if err != nil {
		return nil, fmt.Errorf("course %s landing: %w", courseSlug, err)
	}

	chapters := []models.Chapter{{
		ChapterSummary: models.ChapterSummary{
			Slug:  courseSlug,
			Index: 0,
			Title: landingTitle,
		},
		Content:     landingBody,
		ContentHTML: landingHTML,
	}}

	// The landing chapter owns ordinal 0 and the "index" file name; an
	// authored chapter claiming either would silently collide with it.
	seen := map[int]string{0: "index"}
	for _, doc := range ix.loadDir(filepath.Join(ix.contentDir, "course", courseSlug, "chapter")) {
		if doc.slug == "index" {
			return nil, fmt.Errorf("course %s: chapter file name %q is reserved for the landing chapter", courseSlug, "index")
		}
		title := doc.meta.String("title")
		ordinal, hasOrdinal := doc.meta.Int("index")
		if title == "" || !hasOrdinal {
			ix.skip(fmt.Sprintf("course/%s/chapter/%s.mdx", courseSlug, doc.slug), fmt.Errorf("missing required field (title/index)"))
			continue
		}
		if other, dup := seen[ordinal]; dup {
			return nil, fmt.Errorf("course %s: duplicate chapter ordinal %d (%s, %s)", courseSlug, ordinal, other, doc.slug)
		}
		seen[ordinal] = doc.slug

		html, err := render.Markdown(doc.body)
		if err != nil {
			ix.skip(fmt.Sprintf("course/%s/chapter/%s.mdx", courseSlug, doc.slug), err)
			continue
		}

		chapters = append(chapters, models.Chapter{
			ChapterSummary: models.ChapterSummary{
				Slug:  courseSlug + "/" + doc.slug,
				Index: ordinal,
				Title: title,
			},
			Content:     doc.body,
			ContentHTML: html,
		})
	}

	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].Index < chapters[j].Index
	})
	return chapters, nil
}

// chapterFileName maps a combined chapter slug to its file name: the bare
// course slug (the landing chapter) maps to "index".
func chapterFileName(courseSlug, chapterSlug string) string {
	if chapterSlug == courseSlug {
		return "index"
	}
	return chapterSlug[len(courseSlug)+1:]
}
