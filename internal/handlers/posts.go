package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ikyawthetpaing/webacademy/internal/logger"
	"github.com/ikyawthetpaing/webacademy/internal/models"
	"github.com/ikyawthetpaing/webacademy/internal/services"
	helpers "github.com/ikyawthetpaing/webacademy/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PostHandler struct {
	content services.ContentService
	query   services.PostQueryService
	views   services.ViewService
}

func NewPostHandler(
	content services.ContentService,
	query services.PostQueryService,
	views services.ViewService,
) *PostHandler {
	return &PostHandler{content: content, query: query, views: views}
}

// ListPosts godoc
// @Summary List posts with filtering, search and pagination
// @Tags posts
// @Produce json
// @Param page_index query string false "Zero-based page index"
// @Param per_page query string false "Page size (default 6)"
// @Param query query string false "Case-insensitive title search"
// @Param tag query string false "featured or popular"
// @Param category query string false "Category slug"
// @Param excludes query string false "Comma-separated slugs to hide"
// @Success 200 {object} models.PostPage
// @Router /api/posts [get]
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := models.PostQuery{
		Category:  strings.TrimSpace(params.Get("category")),
		Query:     strings.TrimSpace(params.Get("query")),
		Tag:       strings.TrimSpace(params.Get("tag")),
		PageIndex: parseIntDefault(params.Get("page_index"), 0),
		PerPage:   parseIntDefault(params.Get("per_page"), 0),
	}
	if excludes := strings.TrimSpace(params.Get("excludes")); excludes != "" {
		q.Excludes = strings.Split(excludes, ",")
	}

	page := h.query.Query(r.Context(), q)
	helpers.JSON(w, http.StatusOK, page)
}

// GetPost godoc
// @Summary Get a single post with its body and view count
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.Post
// @Failure 404 {object} helpers.Response
// @Router /api/posts/{slug} [get]
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post := h.content.GetPost(r.Context(), slug)
	if post == nil {
		helpers.Error(w, http.StatusNotFound, "post not found")
		return
	}
	post.Views = h.views.Get(r.Context(), slug)

	helpers.JSON(w, http.StatusOK, post)
}

// RegisterView godoc
// @Summary Count one view of a post and return the new total
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} map[string]int64
// @Failure 404 {object} helpers.Response
// @Router /api/posts/{slug}/views [post]
func (h *PostHandler) RegisterView(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	if post := h.content.GetPost(r.Context(), slug); post == nil {
		helpers.Error(w, http.StatusNotFound, "post not found")
		return
	}

	count := h.views.Increment(r.Context(), slug)
	logger.WithCtx(r.Context()).Debug("post view counted",
		zap.String("slug", slug), zap.Int64("views", count))

	helpers.JSON(w, http.StatusOK, map[string]int64{"views": count})
}

// GetCategories godoc
// @Summary List the derived post categories (slug -> display name)
// @Tags posts
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/posts/categories [get]
func (h *PostHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.content.GetPostCategories(r.Context())
	if categories == nil {
		categories = map[string]string{}
	}
	helpers.JSON(w, http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Resolve a category slug to its display name
// @Tags posts
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} map[string]string
// @Failure 404 {object} helpers.Response
// @Router /api/posts/categories/{slug} [get]
func (h *PostHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	name := h.content.GetPostCategory(r.Context(), slug)
	if name == "" {
		helpers.Error(w, http.StatusNotFound, "category not found")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"slug": slug, "title": name})
}

// parseIntDefault parses a transport string into an int, falling back on
// absence or parse failure.
func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
