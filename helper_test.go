package lagoon

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/cloudlagoon/lagoon/adapters"
	"github.com/cloudlagoon/lagoon/domain/errors"
	"github.com/cloudlagoon/lagoon/domain/models"
	"github.com/cloudlagoon/lagoon/infra"
	"github.com/cloudlagoon/lagoon/infra/disk"
	"github.com/cloudlagoon/lagoon/lib/random"
	"github.com/cloudlagoon/lagoon/ports"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testRoot = "/var/lib/lagoon"

// fakeRemote is an instrumented in memory remote site.
type fakeRemote struct {
	mu          sync.Mutex
	image       []byte
	cover       []byte
	coverErr    error
	fail        map[string]error
	delay       time.Duration
	downloads   int
	inflight    int
	maxInflight int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		image: random.ByteSlice(64),
		cover: random.ByteSlice(48),
		fail:  map[string]error{},
	}
}

func (f *fakeRemote) GetAlbumDetail(ctx context.Context, albumID models.AlbumID) (*models.Album, error) {
	return nil, errors.ErrNotFound
}

func (f *fakeRemote) GetPhotoDetail(ctx context.Context, photoID models.PhotoID) (*models.Photo, error) {
	return nil, errors.ErrNotFound
}

func (f *fakeRemote) Search(ctx context.Context, q ports.SearchQuery) (*models.SearchPage, error) {
	return &models.SearchPage{Page: q.Page}, nil
}

func (f *fakeRemote) CategoriesFilter(ctx context.Context, q ports.CategoryQuery) (*models.SearchPage, error) {
	return &models.SearchPage{Page: q.Page}, nil
}

func (f *fakeRemote) Ranking(ctx context.Context, scope string, page int, category string) (*models.SearchPage, error) {
	return &models.SearchPage{Page: page}, nil
}

func (f *fakeRemote) DownloadCover(ctx context.Context, albumID models.AlbumID) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.coverErr != nil {
		return nil, f.coverErr
	}
	return f.cover, nil
}

func (f *fakeRemote) failCover() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coverErr = errors.ErrRemoteFetch
}

func (f *fakeRemote) healCover() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coverErr = nil
}

func (f *fakeRemote) DownloadImage(ctx context.Context, url string, scrambleKey *int, decode bool) ([]byte, error) {
	f.mu.Lock()
	f.downloads++
	f.inflight++
	if f.inflight > f.maxInflight {
		f.maxInflight = f.inflight
	}
	err := f.fail[url]
	delay := f.delay
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	f.mu.Lock()
	f.inflight--
	f.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return f.image, nil
}

func (f *fakeRemote) downloadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.downloads
}

func (f *fakeRemote) failPage(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[url] = errors.ErrRemoteFetch
}

func (f *fakeRemote) healPage(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.fail, url)
}

func testPageURL(photoID models.PhotoID, index int) string {
	return fmt.Sprintf("http://remote.local/media/%v/%05d.jpg", photoID, index)
}

func testPhoto(albumID models.AlbumID, photoID models.PhotoID, pages int) *models.Photo {
	photo := &models.Photo{
		PhotoID: photoID,
		AlbumID: albumID,
		Title:   "photo " + photoID,
	}
	for x := 1; x <= pages; x++ {
		photo.Pages = append(photo.Pages, &models.PageImage{
			PhotoID:     photoID,
			Index:       x,
			DownloadURL: testPageURL(photoID, x),
		})
	}
	return photo
}

type testMediaOptions struct {
	cache   bool
	decode  bool
	suffix  string
	workers int
}

func testMediaService(t *testing.T, fs afero.Fs, remote ports.RemoteClient, opts testMediaOptions) (*MediaService, disk.Layout) {
	t.Helper()
	assert := require.New(t)

	log := slog.Default()
	var bus ports.EventBus = infra.NewEventBus()
	t.Cleanup(bus.Shutdown)

	storage, err := adapters.NewBasicMediaStorageAdapter(log, fs)
	assert.NoError(err)
	normalizer, err := adapters.NewJpegImageNormalizerAdapter(log, fs)
	assert.NoError(err)

	if opts.workers < 1 {
		opts.workers = 4
	}
	layout := disk.NewLayout(testRoot, opts.suffix)
	s, err := NewMediaService(log, bus, storage, normalizer, remote, layout, opts.cache, opts.decode, opts.workers)
	assert.NoError(err)
	return s, layout
}
