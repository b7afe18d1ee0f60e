package services

import (
	"context"
	"sort"
	"strings"

	"github.com/ikyawthetpaing/webacademy/internal/content"
	"github.com/ikyawthetpaing/webacademy/internal/logger"
	"github.com/ikyawthetpaing/webacademy/internal/models"
	"github.com/ikyawthetpaing/webacademy/internal/repository"

	"go.uber.org/zap"
)

const defaultPerPage = 6

// PostQueryService filters, sorts and paginates the post index. It never
// fails: a missing or unreadable index is an empty corpus.
type PostQueryService interface {
	Query(ctx context.Context, q models.PostQuery) models.PostPage
}

type postQueryService struct {
	repo  *repository.ContentRepository
	views ViewService
}

func NewPostQueryService(repo *repository.ContentRepository, views ViewService) PostQueryService {
	return &postQueryService{repo: repo, views: views}
}

// Query applies filters in a fixed order (excludes, category, title
// query, tag) and then paginates. Items arrive from the index newest
// first; only tag=popular re-sorts, stably, by descending view count.
func (s *postQueryService) Query(ctx context.Context, q models.PostQuery) models.PostPage {
	log := logger.WithCtx(ctx)

	posts, err := s.repo.GetPostsIndex()
	if err != nil {
		log.Error("post index read failed", zap.Error(err))
		return models.PostPage{Items: []models.PostSummary{}, PageCount: 0}
	}

	if len(q.Excludes) > 0 {
		excluded := make(map[string]struct{}, len(q.Excludes))
		for _, slug := range q.Excludes {
			excluded[slug] = struct{}{}
		}
		posts = filterPosts(posts, func(p models.PostSummary) bool {
			_, drop := excluded[p.Slug]
			return !drop
		})
	}

	if q.Category != "" {
		posts = filterPosts(posts, func(p models.PostSummary) bool {
			return content.Slugify(p.Category) == q.Category
		})
	}

	if q.Query != "" {
		needle := strings.ToLower(q.Query)
		posts = filterPosts(posts, func(p models.PostSummary) bool {
			return strings.Contains(strings.ToLower(p.Title), needle)
		})
	}

	switch q.Tag {
	case models.TagFeatured:
		posts = filterPosts(posts, func(p models.PostSummary) bool {
			return p.Featured
		})
	case models.TagPopular:
		for i := range posts {
			posts[i].Views = s.views.Get(ctx, posts[i].Slug)
		}
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Views > posts[j].Views
		})
	}

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	pageIndex := q.PageIndex
	if pageIndex < 0 {
		pageIndex = 0
	}

	// Arbitrary client-supplied page_index/per_page must never overflow
	// the slice arithmetic, so bounds are derived from pageCount first.
	total := len(posts)
	var pageCount int
	switch {
	case total == 0:
		pageCount = 0
	case perPage >= total:
		pageCount = 1
	default:
		pageCount = (total + perPage - 1) / perPage
	}

	items := []models.PostSummary{}
	if pageIndex < pageCount {
		start := pageIndex * perPage
		end := start + perPage
		if end > total {
			end = total
		}
		items = append(items, posts[start:end]...)
	}

	log.Debug("post query",
		zap.String("tag", q.Tag),
		zap.String("category", q.Category),
		zap.String("query", q.Query),
		zap.Int("page_index", pageIndex),
		zap.Int("matches", len(posts)),
		zap.Int("page_count", pageCount),
	)

	return models.PostPage{Items: items, PageCount: pageCount}
}

func filterPosts(posts []models.PostSummary, keep func(models.PostSummary) bool) []models.PostSummary {
	out := posts[:0:0]
	for _, p := range posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
