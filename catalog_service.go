package lagoon

import (
	"context"
	"log/slog"

	"github.com/cloudlagoon/lagoon/domain"
	"github.com/cloudlagoon/lagoon/domain/models"
	"github.com/cloudlagoon/lagoon/ports"
)

// CatalogService serves album and photo metadata. With caching enabled
// the local catalog answers first and the remote is only asked on a
// miss; the answer is then upserted so the next lookup is local.
// Catalog writes are best effort - a failed upsert never fails the
// read which produced it.
type CatalogService struct {
	log          ports.Logger
	remote       ports.RemoteClient
	repositories domain.Repositories
	cache        bool
}

func NewCatalogService(log ports.Logger, remote ports.RemoteClient, repositories domain.Repositories, cache bool) (*CatalogService, error) {
	log = log.With(slog.String("entity", "CatalogService"))

	if _, err := repositories.Album().FindAll(); err != nil {
		return nil, err
	}

	s := &CatalogService{
		log:          log,
		remote:       remote,
		repositories: repositories,
		cache:        cache,
	}
	log.Info("created", slog.Bool("cache", cache))

	return s, nil
}

func (s *CatalogService) GetAlbum(ctx context.Context, albumID models.AlbumID) (*models.Album, error) {
	if s.cache {
		if model, err := s.repositories.Album().FindByID(albumID); err == nil {
			s.log.Debug("album catalog hit", slog.String("albumID", albumID))
			return model, nil
		}
	}

	model, err := s.remote.GetAlbumDetail(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if err := s.repositories.Album().Upsert(model); err != nil {
		s.log.Warn("unable to catalog album", slog.String("albumID", albumID), slog.Any("err", err))
	}
	return model, nil
}

func (s *CatalogService) GetPhoto(ctx context.Context, photoID models.PhotoID) (*models.Photo, error) {
	if s.cache {
		if model, err := s.repositories.Photo().FindByID(photoID); err == nil && model.PageCount() > 0 {
			s.log.Debug("photo catalog hit", slog.String("photoID", photoID))
			return model, nil
		}
	}

	model, err := s.remote.GetPhotoDetail(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if err := s.repositories.Photo().Upsert(model); err != nil {
		s.log.Warn("unable to catalog photo", slog.String("photoID", photoID), slog.Any("err", err))
	}
	return model, nil
}

// CachedAlbums lists the albums known to the local catalog.
func (s *CatalogService) CachedAlbums() ([]*models.Album, error) {
	return s.repositories.Album().FindAll()
}
