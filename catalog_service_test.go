package lagoon

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/cloudlagoon/lagoon/adapters/repository"
	"github.com/cloudlagoon/lagoon/domain"
	"github.com/cloudlagoon/lagoon/domain/models"
	"github.com/cloudlagoon/lagoon/infra"
	"github.com/stretchr/testify/require"
)

// catalogRemote serves metadata and counts how often it is asked.
type catalogRemote struct {
	*fakeRemote
	mu         sync.Mutex
	albumCalls int
	photoCalls int
}

func (f *catalogRemote) GetAlbumDetail(ctx context.Context, albumID models.AlbumID) (*models.Album, error) {
	f.mu.Lock()
	f.albumCalls++
	f.mu.Unlock()
	return &models.Album{
		AlbumID:   albumID,
		Title:     "album " + albumID,
		PageCount: 3,
		Chapters: models.Chapters{
			{PhotoID: albumID, Order: 1, Index: 1, Title: "chapter 1"},
		},
	}, nil
}

func (f *catalogRemote) GetPhotoDetail(ctx context.Context, photoID models.PhotoID) (*models.Photo, error) {
	f.mu.Lock()
	f.photoCalls++
	f.mu.Unlock()
	return testPhoto(photoID, photoID, 3), nil
}

func testRepositories(t *testing.T, source string) domain.Repositories {
	t.Helper()
	assert := require.New(t)

	db, closeDb, err := infra.NewDatabase(slog.Default(), infra.DriverSqlite, source)
	assert.NoError(err)
	t.Cleanup(closeDb)
	assert.NoError(db.AutoMigrate(new(models.Album), new(models.Chapter), new(models.Photo), new(models.PageImage)))

	albumRepository, err := repository.NewAlbumRepository(db)
	assert.NoError(err)
	photoRepository, err := repository.NewPhotoRepository(db)
	assert.NoError(err)
	return repository.NewRepositories(albumRepository, photoRepository)
}

func TestCatalogServiceAlbum(t *testing.T) {
	assert := require.New(t)
	remote := &catalogRemote{fakeRemote: newFakeRemote()}
	repositories := testRepositories(t, "file:catalogalbum?mode=memory&cache=shared")
	s, err := NewCatalogService(slog.Default(), remote, repositories, true)
	assert.NoError(err)

	album, err := s.GetAlbum(context.Background(), "412510")
	assert.NoError(err)
	assert.Equal("album 412510", album.Title)
	assert.Equal(1, remote.albumCalls)

	// second lookup is served by the catalog
	album, err = s.GetAlbum(context.Background(), "412510")
	assert.NoError(err)
	assert.Equal("album 412510", album.Title)
	assert.Len(album.Chapters, 1)
	assert.Equal(1, remote.albumCalls)
}

func TestCatalogServicePhoto(t *testing.T) {
	assert := require.New(t)
	remote := &catalogRemote{fakeRemote: newFakeRemote()}
	repositories := testRepositories(t, "file:catalogphoto?mode=memory&cache=shared")
	s, err := NewCatalogService(slog.Default(), remote, repositories, true)
	assert.NoError(err)

	photo, err := s.GetPhoto(context.Background(), "412510")
	assert.NoError(err)
	assert.Equal(3, photo.PageCount())
	assert.Equal(1, remote.photoCalls)

	photo, err = s.GetPhoto(context.Background(), "412510")
	assert.NoError(err)
	assert.Equal(3, photo.PageCount())
	assert.Equal(1, remote.photoCalls)
}

func TestCatalogServiceCacheDisabled(t *testing.T) {
	assert := require.New(t)
	remote := &catalogRemote{fakeRemote: newFakeRemote()}
	repositories := testRepositories(t, "file:catalognocache?mode=memory&cache=shared")
	s, err := NewCatalogService(slog.Default(), remote, repositories, false)
	assert.NoError(err)

	_, err = s.GetAlbum(context.Background(), "412510")
	assert.NoError(err)
	_, err = s.GetAlbum(context.Background(), "412510")
	assert.NoError(err)
	assert.Equal(2, remote.albumCalls)

	albums, err := s.CachedAlbums()
	assert.NoError(err)
	assert.Len(albums, 1)
}
