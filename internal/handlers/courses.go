package handlers

import (
	"net/http"

	"github.com/ikyawthetpaing/webacademy/internal/services"
	helpers "github.com/ikyawthetpaing/webacademy/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type CourseHandler struct {
	content services.ContentService
}

func NewCourseHandler(content services.ContentService) *CourseHandler {
	return &CourseHandler{content: content}
}

// ListCourses godoc
// @Summary List all courses in display order
// @Tags courses
// @Produce json
// @Success 200 {array} models.CourseMetadata
// @Router /api/courses [get]
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses := h.content.GetCoursesMetadata(r.Context())
	helpers.JSON(w, http.StatusOK, courses)
}

// ListChapters godoc
// @Summary List a course's chapters in ordinal order
// @Tags courses
// @Produce json
// @Param course path string true "Course slug"
// @Success 200 {array} models.ChapterSummary
// @Router /api/courses/{course}/chapters [get]
func (h *CourseHandler) ListChapters(w http.ResponseWriter, r *http.Request) {
	courseSlug := mux.Vars(r)["course"]
	chapters := h.content.GetCourseChapters(r.Context(), courseSlug)
	helpers.JSON(w, http.StatusOK, chapters)
}

// GetCourse godoc
// @Summary Get a course's title and chapter listing
// @Tags courses
// @Produce json
// @Param course path string true "Course slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} helpers.Response
// @Router /api/courses/{course} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseSlug := mux.Vars(r)["course"]
	title := h.content.GetCourseTitle(r.Context(), courseSlug)
	if title == "" {
		helpers.Error(w, http.StatusNotFound, "course not found")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{
		"title":    title,
		"chapters": h.content.GetCourseChapters(r.Context(), courseSlug),
	})
}

// GetChapter godoc
// @Summary Get one chapter's full record; without a chapter slug the
// course's landing chapter is returned
// @Tags courses
// @Produce json
// @Param course path string true "Course slug"
// @Param chapter path string false "Chapter slug"
// @Success 200 {object} models.Chapter
// @Failure 404 {object} helpers.Response
// @Router /api/courses/{course}/chapter/{chapter} [get]
func (h *CourseHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courseSlug := vars["course"]
	chapterSlug := vars["chapter"] // empty on the landing route

	chapter := h.content.GetChapter(r.Context(), courseSlug, chapterSlug)
	if chapter == nil {
		helpers.Error(w, http.StatusNotFound, "chapter not found")
		return
	}
	helpers.JSON(w, http.StatusOK, chapter)
}
