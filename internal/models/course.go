package models

// CourseMetadata describes one course in the top-level course index.
// Index is the course's position on the course listing page.
type CourseMetadata struct {
	Slug        string `json:"slug"`
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// ChapterSummary is the per-chapter entry of a course index. The slug is
// the combined key: "<course>/<chapter>", or the bare course slug for the
// landing chapter.
type ChapterSummary struct {
	Slug  string `json:"slug"`
	Index int    `json:"index"`
	Title string `json:"title"`
}

// CourseIndex aggregates a course's metadata with its chapter summaries
// keyed by combined chapter slug.
type CourseIndex struct {
	Metadata CourseMetadata            `json:"metadata"`
	Chapters map[string]ChapterSummary `json:"chapters"`
}

// Chapter is the full generated chapter record.
type Chapter struct {
	ChapterSummary
	Content     string `json:"content"`
	ContentHTML string `json:"contentHtml"`
}
