package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ikyawthetpaing/webacademy/internal/models"
	"github.com/ikyawthetpaing/webacademy/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockViewRepo is an in-memory ledger with the same lost-update safety
// the SQL upsert provides.
type mockViewRepo struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newMockViewRepo() *mockViewRepo {
	return &mockViewRepo{counts: map[string]int64{}}
}

func (m *mockViewRepo) Increment(_ context.Context, slug string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[slug]++
	return m.counts[slug], nil
}

func (m *mockViewRepo) Get(_ context.Context, slug string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[slug], nil
}

var _ repository.ViewRepo = (*mockViewRepo)(nil)

// writePostIndex materializes a post index snapshot for the query engine.
func writePostIndex(t *testing.T, posts []models.PostSummary) *repository.ContentRepository {
	t.Helper()

	index := map[string]models.PostSummary{}
	for _, p := range posts {
		index[p.Slug] = p
	}
	data, err := json.Marshal(index)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "post"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post", "index.json"), data, 0o644))
	return repository.NewContentRepository(dir)
}

// thirteenPosts builds posts dated newest-first: post-01 is the newest.
func thirteenPosts() []models.PostSummary {
	posts := make([]models.PostSummary, 0, 13)
	for i := 1; i <= 13; i++ {
		posts = append(posts, models.PostSummary{
			Slug:     fmt.Sprintf("post-%02d", i),
			Title:    fmt.Sprintf("Post %02d", i),
			Category: "Coding Tips",
			Date:     fmt.Sprintf("2024-03-%02d", 14-i),
			Author:   "jane",
		})
	}
	return posts
}

func newQueryService(t *testing.T, posts []models.PostSummary, views ViewService) PostQueryService {
	t.Helper()
	if views == nil {
		views = NewViewService(nil)
	}
	return NewPostQueryService(writePostIndex(t, posts), views)
}

func TestQueryPagination(t *testing.T) {
	svc := newQueryService(t, thirteenPosts(), nil)
	ctx := context.Background()

	page := svc.Query(ctx, models.PostQuery{PageIndex: 0})
	assert.Equal(t, 3, page.PageCount)
	assert.Len(t, page.Items, 6)
	assert.Equal(t, "post-01", page.Items[0].Slug)

	page = svc.Query(ctx, models.PostQuery{PageIndex: 2})
	assert.Equal(t, 3, page.PageCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "post-13", page.Items[0].Slug)

	// Out of range: empty items but the page count is still reported.
	page = svc.Query(ctx, models.PostQuery{PageIndex: 5})
	assert.Equal(t, 3, page.PageCount)
	assert.Empty(t, page.Items)
}

func TestQueryExtremePaginationValues(t *testing.T) {
	svc := newQueryService(t, thirteenPosts(), nil)
	ctx := context.Background()

	// page_index and per_page come straight off the query string, so any
	// Atoi-parseable value must produce a page, never a panic.
	page := svc.Query(ctx, models.PostQuery{PageIndex: math.MaxInt/6 + 1})
	assert.Equal(t, 3, page.PageCount)
	assert.Empty(t, page.Items)

	page = svc.Query(ctx, models.PostQuery{PageIndex: math.MaxInt})
	assert.Equal(t, 3, page.PageCount)
	assert.Empty(t, page.Items)

	page = svc.Query(ctx, models.PostQuery{PerPage: math.MaxInt})
	assert.Equal(t, 1, page.PageCount)
	assert.Len(t, page.Items, 13)

	page = svc.Query(ctx, models.PostQuery{PageIndex: math.MaxInt, PerPage: math.MaxInt})
	assert.Equal(t, 1, page.PageCount)
	assert.Empty(t, page.Items)
}

func TestQueryDefaultOrderIsNewestFirst(t *testing.T) {
	svc := newQueryService(t, thirteenPosts(), nil)

	page := svc.Query(context.Background(), models.PostQuery{PerPage: 13})
	require.Len(t, page.Items, 13)
	for i, item := range page.Items {
		assert.Equal(t, fmt.Sprintf("post-%02d", i+1), item.Slug)
	}
}

func TestQueryExcludes(t *testing.T) {
	svc := newQueryService(t, thirteenPosts(), nil)

	page := svc.Query(context.Background(), models.PostQuery{
		Excludes: []string{"post-01", "post-02"},
		PerPage:  13,
	})
	assert.Equal(t, 1, page.PageCount)
	assert.Len(t, page.Items, 11)
	for _, item := range page.Items {
		assert.NotContains(t, []string{"post-01", "post-02"}, item.Slug)
	}
}

func TestQueryCategoryMatchesSlugifiedVariants(t *testing.T) {
	posts := []models.PostSummary{
		{Slug: "a", Title: "A", Category: "Coding Tips", Date: "2024-03-03"},
		{Slug: "b", Title: "B", Category: "coding-tips", Date: "2024-03-02"},
		{Slug: "c", Title: "C", Category: "Design", Date: "2024-03-01"},
	}
	svc := newQueryService(t, posts, nil)

	page := svc.Query(context.Background(), models.PostQuery{Category: "coding-tips"})
	require.Len(t, page.Items, 2)
	assert.Equal(t, "a", page.Items[0].Slug)
	assert.Equal(t, "b", page.Items[1].Slug)
}

func TestQueryTitleSearch(t *testing.T) {
	posts := []models.PostSummary{
		{Slug: "go", Title: "Intro to Go", Date: "2024-03-03"},
		{Slug: "css", Title: "CSS Grid Deep Dive", Date: "2024-03-02"},
		{Slug: "go-adv", Title: "Advanced GO Patterns", Date: "2024-03-01"},
	}
	svc := newQueryService(t, posts, nil)

	page := svc.Query(context.Background(), models.PostQuery{Query: "go"})
	require.Len(t, page.Items, 2)
	assert.Equal(t, "go", page.Items[0].Slug)
	assert.Equal(t, "go-adv", page.Items[1].Slug)
}

func TestQueryFeaturedTag(t *testing.T) {
	posts := []models.PostSummary{
		{Slug: "a", Title: "A", Featured: true, Date: "2024-03-03"},
		{Slug: "b", Title: "B", Date: "2024-03-02"},
		{Slug: "c", Title: "C", Featured: true, Date: "2024-03-01"},
	}
	svc := newQueryService(t, posts, nil)

	page := svc.Query(context.Background(), models.PostQuery{Tag: models.TagFeatured})
	require.Len(t, page.Items, 2)
	assert.Equal(t, "a", page.Items[0].Slug)
	assert.Equal(t, "c", page.Items[1].Slug)
}

func TestQueryPopularTag(t *testing.T) {
	posts := []models.PostSummary{
		{Slug: "a", Title: "A", Date: "2024-03-04"},
		{Slug: "b", Title: "B", Date: "2024-03-03"},
		{Slug: "c", Title: "C", Date: "2024-03-02"},
		{Slug: "d", Title: "D", Date: "2024-03-01"},
	}
	ledger := newMockViewRepo()
	ledger.counts["c"] = 10
	ledger.counts["b"] = 10
	ledger.counts["d"] = 3

	svc := newQueryService(t, posts, NewViewService(ledger))

	page := svc.Query(context.Background(), models.PostQuery{Tag: models.TagPopular})
	require.Len(t, page.Items, 4)

	// Descending views; the b/c tie keeps date-descending order.
	assert.Equal(t, "b", page.Items[0].Slug)
	assert.Equal(t, "c", page.Items[1].Slug)
	assert.Equal(t, "d", page.Items[2].Slug)
	assert.Equal(t, "a", page.Items[3].Slug)
	assert.Equal(t, int64(10), page.Items[0].Views)
}

func TestQueryMissingIndexIsEmptyCorpus(t *testing.T) {
	repo := repository.NewContentRepository(filepath.Join(t.TempDir(), "missing"))
	svc := NewPostQueryService(repo, NewViewService(nil))

	page := svc.Query(context.Background(), models.PostQuery{})
	assert.Equal(t, 0, page.PageCount)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestQueryCombinedFilters(t *testing.T) {
	posts := []models.PostSummary{
		{Slug: "a", Title: "Go Tips", Category: "Coding Tips", Featured: true, Date: "2024-03-04"},
		{Slug: "b", Title: "Go Tips Again", Category: "Coding Tips", Date: "2024-03-03"},
		{Slug: "c", Title: "CSS Tips", Category: "Coding Tips", Featured: true, Date: "2024-03-02"},
		{Slug: "d", Title: "Go Tricks", Category: "Design", Featured: true, Date: "2024-03-01"},
	}
	svc := newQueryService(t, posts, nil)

	page := svc.Query(context.Background(), models.PostQuery{
		Category: "coding-tips",
		Query:    "go",
		Tag:      models.TagFeatured,
	})
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a", page.Items[0].Slug)
}
