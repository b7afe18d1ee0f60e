package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/ikyawthetpaing/webacademy/internal/models"
)

// ContentRepository is the read-only accessor over the generated content
// snapshot. Lookups by slug return (nil, nil) when the item does not
// exist; collection reads return an error only on real I/O or decode
// failures, which the service layer degrades to empty results.
type ContentRepository struct {
	generatedDir string
}

func NewContentRepository(generatedDir string) *ContentRepository {
	return &ContentRepository{generatedDir: generatedDir}
}

// readJSON decodes path into v. Returns (false, nil) when the file does
// not exist.
func (r *ContentRepository) readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (r *ContentRepository) GetPost(slug string) (*models.Post, error) {
	var post models.Post
	ok, err := r.readJSON(filepath.Join(r.generatedDir, "post", slug+".json"), &post)
	if err != nil || !ok {
		return nil, err
	}
	return &post, nil
}

// GetPostsIndex returns every post summary, newest first.
func (r *ContentRepository) GetPostsIndex() ([]models.PostSummary, error) {
	index := map[string]models.PostSummary{}
	ok, err := r.readJSON(filepath.Join(r.generatedDir, "post", "index.json"), &index)
	if err != nil || !ok {
		return nil, err
	}

	posts := make([]models.PostSummary, 0, len(index))
	for _, post := range index {
		posts = append(posts, post)
	}
	// The index is a JSON object, so order is re-established here: newest
	// first, ties broken by slug for determinism.
	sort.SliceStable(posts, func(i, j int) bool {
		ti, tj := posts[i].PublishedAt(), posts[j].PublishedAt()
		if ti.Equal(tj) {
			return posts[i].Slug < posts[j].Slug
		}
		return ti.After(tj)
	})
	return posts, nil
}

// GetPostCategories returns the derived category registry
// (slug -> display name).
func (r *ContentRepository) GetPostCategories() (map[string]string, error) {
	categories := map[string]string{}
	ok, err := r.readJSON(filepath.Join(r.generatedDir, "post", "categories.json"), &categories)
	if err != nil || !ok {
		return nil, err
	}
	return categories, nil
}

// GetPostCategory returns the display name for a category slug, or ""
// when unknown.
func (r *ContentRepository) GetPostCategory(slug string) (string, error) {
	categories, err := r.GetPostCategories()
	if err != nil {
		return "", err
	}
	return categories[slug], nil
}

func (r *ContentRepository) GetPage(slug string) (*models.Page, error) {
	var page models.Page
	ok, err := r.readJSON(filepath.Join(r.generatedDir, "page", slug+".json"), &page)
	if err != nil || !ok {
		return nil, err
	}
	return &page, nil
}

func (r *ContentRepository) GetAuthor(slug string) (*models.Author, error) {
	var author models.Author
	ok, err := r.readJSON(filepath.Join(r.generatedDir, "author", slug+".json"), &author)
	if err != nil || !ok {
		return nil, err
	}
	return &author, nil
}

// GetCoursesMetadata returns the ordinal-ordered course list.
func (r *ContentRepository) GetCoursesMetadata() ([]models.CourseMetadata, error) {
	var courses []models.CourseMetadata
	ok, err := r.readJSON(filepath.Join(r.generatedDir, "course", "index.json"), &courses)
	if err != nil || !ok {
		return nil, err
	}
	return courses, nil
}

// GetCourseChapters returns a course's chapter summaries in ascending
// ordinal order.
func (r *ContentRepository) GetCourseChapters(courseSlug string) ([]models.ChapterSummary, error) {
	var index models.CourseIndex
	ok, err := r.readJSON(filepath.Join(r.generatedDir, "course", courseSlug, "index.json"), &index)
	if err != nil || !ok {
		return nil, err
	}

	chapters := make([]models.ChapterSummary, 0, len(index.Chapters))
	for _, chapter := range index.Chapters {
		chapters = append(chapters, chapter)
	}
	sort.SliceStable(chapters, func(i, j int) bool {
		if chapters[i].Index == chapters[j].Index {
			return chapters[i].Slug < chapters[j].Slug
		}
		return chapters[i].Index < chapters[j].Index
	})
	return chapters, nil
}

// GetChapter resolves a chapter by course and chapter slug. An empty
// chapterSlug resolves the combined key to exactly the course slug, which
// is the course's landing chapter.
func (r *ContentRepository) GetChapter(courseSlug, chapterSlug string) (*models.Chapter, error) {
	name := chapterSlug
	if name == "" {
		name = "index"
	}

	var chapter models.Chapter
	path := filepath.Join(r.generatedDir, "course", courseSlug, "chapter", name+".json")
	ok, err := r.readJSON(path, &chapter)
	if err != nil || !ok {
		return nil, err
	}

	// Guard the key contract: the stored slug must match the combined key.
	key := courseSlug
	if chapterSlug != "" {
		key = courseSlug + "/" + chapterSlug
	}
	if chapter.Slug != key {
		return nil, nil
	}
	return &chapter, nil
}
