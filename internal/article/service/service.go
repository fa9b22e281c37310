package service

import (
	"context"
	"time"

	"github.com/jvdeveloper/blog-api/internal/article"
	"github.com/jvdeveloper/blog-api/internal/article/repository"
	"github.com/jvdeveloper/blog-api/pkg/metrics"
)

// RecentLimit is the number of articles returned when the recents flag is set.
const RecentLimit = 2

// Service defines the article business operations used by the handler layer.
type Service interface {
	Create(ctx context.Context, a *article.Article) (*article.Article, error)
	List(ctx context.Context, recents bool) ([]*article.Article, error)
	Get(ctx context.Context, id string) (*article.Article, error)
	Update(ctx context.Context, id string, p article.Patch) (*article.Article, error)
	Delete(ctx context.Context, id string) (*article.Article, error)
	AttachImage(ctx context.Context, id string, imageURL string) (*article.Article, error)
	Search(ctx context.Context, term string) ([]*article.Article, error)
}

type articleService struct {
	repo           repository.Repository
	placeholderURL string
}

// New returns a Service backed by the given repository. placeholderURL is
// assigned to articles created without an image so the image field always
// resolves.
func New(repo repository.Repository, placeholderURL string) Service {
	return &articleService{repo: repo, placeholderURL: placeholderURL}
}

func (s *articleService) Create(ctx context.Context, a *article.Article) (*article.Article, error) {
	if a.Date.IsZero() {
		a.Date = time.Now().UTC()
	}
	if a.Image == "" {
		a.Image = s.placeholderURL
	}
	out, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	metrics.ArticlesCreated.Inc()
	return out, nil
}

func (s *articleService) List(ctx context.Context, recents bool) ([]*article.Article, error) {
	var limit int64
	if recents {
		limit = RecentLimit
	}
	return s.repo.List(ctx, limit)
}

func (s *articleService) Get(ctx context.Context, id string) (*article.Article, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *articleService) Update(ctx context.Context, id string, p article.Patch) (*article.Article, error) {
	out, err := s.repo.UpdateByID(ctx, id, p)
	if err != nil {
		return nil, err
	}
	metrics.ArticlesUpdated.Inc()
	return out, nil
}

func (s *articleService) Delete(ctx context.Context, id string) (*article.Article, error) {
	out, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.ArticlesDeleted.Inc()
	return out, nil
}

func (s *articleService) AttachImage(ctx context.Context, id string, imageURL string) (*article.Article, error) {
	out, err := s.repo.SetImage(ctx, id, imageURL)
	if err != nil {
		return nil, err
	}
	metrics.ArticlesUpdated.Inc()
	return out, nil
}

func (s *articleService) Search(ctx context.Context, term string) ([]*article.Article, error) {
	return s.repo.Search(ctx, term)
}
