package ports

import (
	"context"

	"github.com/cloudlagoon/lagoon/domain/models"
)

// SearchQuery carries the common remote search parameters.
// MainTag selects the search scope: 0 site, 1 work, 2 author, 3 tag, 4 actor.
type SearchQuery struct {
	Query       string
	Page        int
	MainTag     int
	OrderBy     string
	Time        string
	Category    string
	SubCategory string
}

// CategoryQuery carries the category browse parameters.
type CategoryQuery struct {
	Page        int
	Time        string
	Category    string
	OrderBy     string
	SubCategory string
}

// RemoteClient is the boundary to the remote comic site. Implementations
// own the wire protocol; the core only consumes metadata and raw bytes.
type RemoteClient interface {
	GetAlbumDetail(ctx context.Context, albumID models.AlbumID) (*models.Album, error)
	GetPhotoDetail(ctx context.Context, photoID models.PhotoID) (*models.Photo, error)
	Search(ctx context.Context, q SearchQuery) (*models.SearchPage, error)
	CategoriesFilter(ctx context.Context, q CategoryQuery) (*models.SearchPage, error)
	Ranking(ctx context.Context, scope string, page int, category string) (*models.SearchPage, error)
	DownloadCover(ctx context.Context, albumID models.AlbumID) ([]byte, error)
	DownloadImage(ctx context.Context, url string, scrambleKey *int, decode bool) ([]byte, error)
}
