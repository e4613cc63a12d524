package controllers

import (
	"context"
	"net/http"

	"github.com/cloudlagoon/lagoon/domain"
	"github.com/cloudlagoon/lagoon/domain/errors"
	"github.com/cloudlagoon/lagoon/domain/models"
	"github.com/cloudlagoon/lagoon/infra"
)

// CatalogService serves album and photo metadata.
type CatalogService interface {
	GetAlbum(ctx context.Context, albumID models.AlbumID) (*models.Album, error)
	GetPhoto(ctx context.Context, photoID models.PhotoID) (*models.Photo, error)
	CachedAlbums() ([]*models.Album, error)
}

// MediaService materializes and evicts cached media files.
type MediaService interface {
	EnsureCover(ctx context.Context, album *models.Album) (string, error)
	EnsureThumbnail(ctx context.Context, album *models.Album) (string, error)
	EnsurePhotoImages(ctx context.Context, photo *models.Photo) (*domain.FetchReport, error)
	CachedPhotoImages(albumID models.AlbumID, photoID models.PhotoID) ([]string, error)
	DeleteCover(albumID models.AlbumID) (bool, error)
	DeleteThumbnail(albumID models.AlbumID) (bool, error)
	ClearPhotoImages(albumID models.AlbumID, photoID models.PhotoID) ([]string, error)
}

// StatsService reports the cache footprint.
type StatsService interface {
	Snapshot() domain.CacheStats
}

type errorBody struct {
	Error string `json:"error"`
}

// renderError maps domain errors onto status codes: unknown resources
// are 404, remote trouble 502, the rest 500.
func renderError(render infra.Render, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errors.ErrRemoteFetch):
		status = http.StatusBadGateway
	}
	_ = render.JSON(w, status, errorBody{Error: err.Error()})
}
