package models

import "time"

// PostSummary is what the post index stores per post: everything except
// the body. Views is zero unless the query engine annotated it.
type PostSummary struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Thumbnail   string `json:"thumbnail"`
	Date        string `json:"date"`
	Featured    bool   `json:"featured"`
	Author      string `json:"author"`
	Views       int64  `json:"views"`
}

// Post is the full generated record including the body.
type Post struct {
	PostSummary
	Content     string `json:"content"`
	ContentHTML string `json:"contentHtml"`
}

var postDateLayouts = []string{"2006-01-02", time.RFC3339, "January 2, 2006"}

// PublishedAt parses the frontmatter date. Unparseable dates sort last.
func (p PostSummary) PublishedAt() time.Time {
	for _, layout := range postDateLayouts {
		if t, err := time.Parse(layout, p.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// PostQuery is the filter/sort/paginate specification for the post query
// engine. All filters are optional and combine with logical AND.
type PostQuery struct {
	Excludes  []string
	Category  string
	Query     string
	Tag       string
	PageIndex int
	PerPage   int
}

// Post tags with special query semantics.
const (
	TagFeatured = "featured"
	TagPopular  = "popular"
)

// PostPage is one page of query results.
type PostPage struct {
	Items     []PostSummary `json:"items"`
	PageCount int           `json:"pageCount"`
}
