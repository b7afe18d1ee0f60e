package models

// Page is a standalone content page (about, privacy policy and so on).
type Page struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	ContentHTML string `json:"contentHtml"`
}

// Author is a post author's bio record.
type Author struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	Role    string `json:"role"`
	Website string `json:"website"`
	Content string `json:"content"`
}
