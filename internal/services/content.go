package services

import (
	"context"

	"github.com/ikyawthetpaing/webacademy/internal/logger"
	"github.com/ikyawthetpaing/webacademy/internal/models"
	"github.com/ikyawthetpaing/webacademy/internal/repository"

	"go.uber.org/zap"
)

// ContentService serves reads over the generated snapshot. Storage
// failures degrade to nil/empty results so content browsing stays
// partially available; only the lookup miss itself means "not found".
type ContentService interface {
	GetPost(ctx context.Context, slug string) *models.Post
	GetPage(ctx context.Context, slug string) *models.Page
	GetAuthor(ctx context.Context, slug string) *models.Author
	GetChapter(ctx context.Context, courseSlug, chapterSlug string) *models.Chapter
	GetCourseChapters(ctx context.Context, courseSlug string) []models.ChapterSummary
	GetCoursesMetadata(ctx context.Context) []models.CourseMetadata
	GetCourseTitle(ctx context.Context, courseSlug string) string
	GetPostCategories(ctx context.Context) map[string]string
	GetPostCategory(ctx context.Context, slug string) string
}

type contentService struct {
	repo *repository.ContentRepository
}

func NewContentService(repo *repository.ContentRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) GetPost(ctx context.Context, slug string) *models.Post {
	post, err := s.repo.GetPost(slug)
	if err != nil {
		logger.WithCtx(ctx).Error("post read failed", zap.String("slug", slug), zap.Error(err))
		return nil
	}
	return post
}

func (s *contentService) GetPage(ctx context.Context, slug string) *models.Page {
	page, err := s.repo.GetPage(slug)
	if err != nil {
		logger.WithCtx(ctx).Error("page read failed", zap.String("slug", slug), zap.Error(err))
		return nil
	}
	return page
}

func (s *contentService) GetAuthor(ctx context.Context, slug string) *models.Author {
	author, err := s.repo.GetAuthor(slug)
	if err != nil {
		logger.WithCtx(ctx).Error("author read failed", zap.String("slug", slug), zap.Error(err))
		return nil
	}
	return author
}

func (s *contentService) GetChapter(ctx context.Context, courseSlug, chapterSlug string) *models.Chapter {
	chapter, err := s.repo.GetChapter(courseSlug, chapterSlug)
	if err != nil {
		logger.WithCtx(ctx).Error("chapter read failed",
			zap.String("course", courseSlug),
			zap.String("chapter", chapterSlug),
			zap.Error(err))
		return nil
	}
	return chapter
}

func (s *contentService) GetCourseChapters(ctx context.Context, courseSlug string) []models.ChapterSummary {
	chapters, err := s.repo.GetCourseChapters(courseSlug)
	if err != nil {
		logger.WithCtx(ctx).Error("course chapters read failed", zap.String("course", courseSlug), zap.Error(err))
		return nil
	}
	return chapters
}

func (s *contentService) GetCoursesMetadata(ctx context.Context) []models.CourseMetadata {
	courses, err := s.repo.GetCoursesMetadata()
	if err != nil {
		logger.WithCtx(ctx).Error("course list read failed", zap.Error(err))
		return nil
	}
	return courses
}

func (s *contentService) GetCourseTitle(ctx context.Context, courseSlug string) string {
	for _, course := range s.GetCoursesMetadata(ctx) {
		if course.Slug == courseSlug {
			return course.Title
		}
	}
	return ""
}

func (s *contentService) GetPostCategories(ctx context.Context) map[string]string {
	categories, err := s.repo.GetPostCategories()
	if err != nil {
		logger.WithCtx(ctx).Error("categories read failed", zap.Error(err))
		return nil
	}
	return categories
}

func (s *contentService) GetPostCategory(ctx context.Context, slug string) string {
	name, err := s.repo.GetPostCategory(slug)
	if err != nil {
		logger.WithCtx(ctx).Error("category read failed", zap.String("slug", slug), zap.Error(err))
		return ""
	}
	return name
}
