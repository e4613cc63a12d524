package lagoon

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cloudlagoon/lagoon/domain"
	"github.com/cloudlagoon/lagoon/domain/models"
	"github.com/cloudlagoon/lagoon/domain/vo"
	"github.com/cloudlagoon/lagoon/infra/disk"
	"github.com/cloudlagoon/lagoon/lib"
	"github.com/cloudlagoon/lagoon/ports"
	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// MediaService materializes remote media on the local disk.
// The filesystem itself is the cache index: presence of a committed
// file is a hit, absence a miss, and every decision re-derives its
// state from a fresh listing.
type MediaService struct {
	log        ports.Logger
	bus        ports.EventBus
	storage    ports.MediaStorage
	normalizer ports.ImageNormalizer
	remote     ports.RemoteClient
	layout     disk.Layout
	cache      bool
	decode     bool
	workers    int
	group      singleflight.Group
}

func NewMediaService(log ports.Logger, bus ports.EventBus, storage ports.MediaStorage, normalizer ports.ImageNormalizer, remote ports.RemoteClient, layout disk.Layout, cache, decode bool, workers int) (*MediaService, error) {
	lib.Assert(workers >= 1)
	log = log.With(slog.String("entity", "MediaService"))

	s := &MediaService{
		log:        log,
		bus:        bus,
		storage:    storage,
		normalizer: normalizer,
		remote:     remote,
		layout:     layout,
		cache:      cache,
		decode:     decode,
		workers:    workers,
	}
	log.Info("created",
		slog.String("root", layout.Root()),
		slog.String("suffix", layout.Suffix()),
		slog.Bool("cache", cache),
		slog.Int("workers", workers),
	)

	return s, nil
}

// EnsureCover returns the canonical cover path, downloading it first
// unless a cached copy may be served.
func (s *MediaService) EnsureCover(ctx context.Context, album *models.Album) (string, error) {
	identity := vo.Cover(album.AlbumID)
	target := s.layout.Resolve(identity)
	if s.cache && s.storage.Exists(target) {
		s.log.Debug("cover hit", slog.String("path", target))
		return target, nil
	}
	if !s.cache {
		// forced refresh - a stale copy must not survive a failed refetch
		if _, err := s.evict(identity); err != nil {
			return "", err
		}
	}

	blob, err := s.remote.DownloadCover(ctx, album.AlbumID)
	if err != nil {
		return "", err
	}
	if err := s.store(identity, target, blob, urlExt(album.CoverURL)); err != nil {
		return "", err
	}
	return target, nil
}

// EnsureThumbnail caches the album thumbnail under the thumbnails root.
func (s *MediaService) EnsureThumbnail(ctx context.Context, album *models.Album) (string, error) {
	identity := vo.Thumbnail(album.AlbumID)
	target := s.layout.Resolve(identity)
	if s.cache && s.storage.Exists(target) {
		s.log.Debug("thumbnail hit", slog.String("path", target))
		return target, nil
	}
	if !s.cache {
		if _, err := s.evict(identity); err != nil {
			return "", err
		}
	}

	var blob []byte
	var err error
	if album.CoverURL != "" {
		blob, err = s.remote.DownloadImage(ctx, album.CoverURL, nil, false)
	} else {
		blob, err = s.remote.DownloadCover(ctx, album.AlbumID)
	}
	if err != nil {
		return "", err
	}
	if err := s.store(identity, target, blob, urlExt(album.CoverURL)); err != nil {
		return "", err
	}
	return target, nil
}

// EnsurePhotoImages materializes the full image set of one photo.
// Waves for the same photo are deduplicated, so a burst of identical
// requests produces a single set of downloads. Per page failures are
// contained: the wave always runs to the end and reports what is on
// disk afterwards.
func (s *MediaService) EnsurePhotoImages(ctx context.Context, photo *models.Photo) (*domain.FetchReport, error) {
	// a wave once started runs to completion even when the caller goes away
	ctx = context.WithoutCancel(ctx)
	key := photo.AlbumID + "/" + photo.PhotoID
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.fetchPhotoImages(ctx, photo)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.FetchReport), nil
}

func (s *MediaService) fetchPhotoImages(ctx context.Context, photo *models.Photo) (*domain.FetchReport, error) {
	log := s.log.With(slog.String("albumID", photo.AlbumID), slog.String("photoID", photo.PhotoID))
	dir := s.layout.PhotoDir(photo.AlbumID, photo.PhotoID)

	if !s.cache {
		// forced refresh - drop whatever is present and refetch
		if _, err := s.ClearPhotoImages(photo.AlbumID, photo.PhotoID); err != nil {
			return nil, err
		}
	}

	existing, err := s.storage.ListBySuffix(dir, s.layout.Suffix())
	if err != nil {
		return nil, err
	}
	if s.cache && photo.PageCount() > 0 && len(existing) >= photo.PageCount() {
		log.Debug("photo hit", slog.Int("pages", len(existing)))
		return &domain.FetchReport{Paths: existing}, nil
	}

	var mu sync.Mutex
	failures := []domain.FetchFailure{}
	g := &errgroup.Group{}
	g.SetLimit(s.workers)
	for _, page := range photo.Pages {
		page := page
		identity := vo.Page(photo.AlbumID, photo.PhotoID, page.Index)
		target := s.layout.Resolve(identity)
		if s.storage.Exists(target) {
			continue
		}
		g.Go(func() error {
			if err := s.fetchPage(ctx, page, identity, target); err != nil {
				log.Warn("page failed", slog.String("identity", identity.String()), slog.Any("err", err))
				mu.Lock()
				failures = append(failures, domain.FetchFailure{Identity: identity, Err: err})
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	paths, err := s.storage.ListBySuffix(dir, s.layout.Suffix())
	if err != nil {
		return nil, err
	}
	log.Info("fetch wave complete", slog.Int("pages", len(paths)), slog.Int("failed", len(failures)))
	return &domain.FetchReport{Paths: paths, Failures: failures}, nil
}

func (s *MediaService) fetchPage(ctx context.Context, page *models.PageImage, identity vo.ArtifactIdentity, target string) error {
	blob, err := s.remote.DownloadImage(ctx, page.DownloadURL, page.ScrambleKey, s.decode)
	if err != nil {
		return err
	}
	return s.store(identity, target, blob, urlExt(page.DownloadURL))
}

// CachedPhotoImages lists the committed pages of one photo without
// touching the remote.
func (s *MediaService) CachedPhotoImages(albumID models.AlbumID, photoID models.PhotoID) ([]string, error) {
	dir := s.layout.PhotoDir(albumID, photoID)
	return s.storage.ListBySuffix(dir, s.layout.Suffix())
}

// DeleteCover evicts the cached cover. Evicting an absent cover is a
// no-op returning false.
func (s *MediaService) DeleteCover(albumID models.AlbumID) (bool, error) {
	return s.evict(vo.Cover(albumID))
}

func (s *MediaService) DeleteThumbnail(albumID models.AlbumID) (bool, error) {
	return s.evict(vo.Thumbnail(albumID))
}

// ClearPhotoImages evicts all cached pages of one photo and returns the
// removed file names.
func (s *MediaService) ClearPhotoImages(albumID models.AlbumID, photoID models.PhotoID) ([]string, error) {
	dir := s.layout.PhotoDir(albumID, photoID)
	paths, err := s.storage.ListBySuffix(dir, s.layout.Suffix())
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, p := range paths {
		removed, err := s.storage.Remove(p)
		if err != nil {
			return names, err
		}
		if !removed {
			continue
		}
		names = append(names, filepath.Base(p))
		s.bus.Pub(ports.TopicArtifactRemoved, ports.Event{p})
	}
	return names, nil
}

func (s *MediaService) evict(identity vo.ArtifactIdentity) (bool, error) {
	target := s.layout.Resolve(identity)
	removed, err := s.storage.Remove(target)
	if err != nil {
		return false, err
	}
	if removed {
		s.bus.Pub(ports.TopicArtifactRemoved, ports.Event{target})
	}
	return removed, nil
}

// store commits blob at target. A blob already carrying the canonical
// suffix is committed atomically as is; anything else goes through a
// temporary download file and the normalizer. The decode toggle only
// selects remote descrambling and never bypasses normalization.
func (s *MediaService) store(identity vo.ArtifactIdentity, target string, blob []byte, srcExt string) error {
	if srcExt == s.layout.Suffix() {
		if err := s.storage.WriteFileAtomic(target, blob); err != nil {
			return err
		}
	} else {
		tmp := target + "." + ulid.Make().String() + srcExt
		if err := s.storage.WriteFile(tmp, blob); err != nil {
			return err
		}
		if err := s.normalizer.Normalize(tmp, target); err != nil {
			return err
		}
	}
	s.bus.Pub(ports.TopicArtifactStored, ports.Event{identity.String(), target})
	return nil
}

// urlExt is the lowercased extension of the url path, defaulting to
// webp which is what the remote serves for bare media urls.
func urlExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || path.Ext(u.Path) == "" {
		return ".webp"
	}
	return strings.ToLower(path.Ext(u.Path))
}
