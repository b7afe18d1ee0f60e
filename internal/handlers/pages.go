package handlers

import (
	"net/http"

	"github.com/ikyawthetpaing/webacademy/internal/services"
	helpers "github.com/ikyawthetpaing/webacademy/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type PageHandler struct {
	content services.ContentService
}

func NewPageHandler(content services.ContentService) *PageHandler {
	return &PageHandler{content: content}
}

// GetPage godoc
// @Summary Get a standalone content page
// @Tags pages
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} models.Page
// @Failure 404 {object} helpers.Response
// @Router /api/pages/{slug} [get]
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	page := h.content.GetPage(r.Context(), slug)
	if page == nil {
		helpers.Error(w, http.StatusNotFound, "page not found")
		return
	}
	helpers.JSON(w, http.StatusOK, page)
}

// GetAuthor godoc
// @Summary Get an author's bio
// @Tags pages
// @Produce json
// @Param slug path string true "Author slug"
// @Success 200 {object} models.Author
// @Failure 404 {object} helpers.Response
// @Router /api/authors/{slug} [get]
func (h *PageHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	author := h.content.GetAuthor(r.Context(), slug)
	if author == nil {
		helpers.Error(w, http.StatusNotFound, "author not found")
		return
	}
	helpers.JSON(w, http.StatusOK, author)
}
