package repository

import (
	"context"

	"github.com/jvdeveloper/blog-api/internal/article"
)

// Repository defines persistence operations for articles. Implementations
// return article.ErrNotFound when an id (including a malformed one) does not
// resolve to a stored article. Listings are ordered by date descending.
type Repository interface {
	Create(ctx context.Context, a *article.Article) (*article.Article, error)
	List(ctx context.Context, limit int64) ([]*article.Article, error)
	GetByID(ctx context.Context, id string) (*article.Article, error)
	UpdateByID(ctx context.Context, id string, p article.Patch) (*article.Article, error)
	DeleteByID(ctx context.Context, id string) (*article.Article, error)
	SetImage(ctx context.Context, id string, imageURL string) (*article.Article, error)
	Search(ctx context.Context, term string) ([]*article.Article, error)
}
