package remote

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cloudlagoon/lagoon/domain/errors"
	"github.com/stretchr/testify/require"
)

func TestGetAlbumDetail(t *testing.T) {
	assert := require.New(t)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/albums/412510", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"album_id":"412510","title":"a title","page_count":20}`))
	}))
	defer upstream.Close()

	s, err := NewHttpRemoteClient(slog.Default(), upstream.URL, time.Second)
	assert.NoError(err)

	album, err := s.GetAlbumDetail(context.Background(), "412510")
	assert.NoError(err)
	assert.Equal("412510", album.AlbumID)
	assert.Equal("a title", album.Title)
	assert.Equal(20, album.PageCount)
}

func TestGetAlbumDetailNotFound(t *testing.T) {
	assert := require.New(t)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	s, err := NewHttpRemoteClient(slog.Default(), upstream.URL, time.Second)
	assert.NoError(err)

	_, err = s.GetAlbumDetail(context.Background(), "nope")
	assert.ErrorIs(err, errors.ErrNotFound)
}

func TestDownloadImageQuery(t *testing.T) {
	assert := require.New(t)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/media/00001.webp", r.URL.Path)
		assert.Equal("true", r.URL.Query().Get("decode"))
		assert.Equal("220980", r.URL.Query().Get("scramble_key"))
		_, _ = w.Write([]byte("image bytes"))
	}))
	defer upstream.Close()

	s, err := NewHttpRemoteClient(slog.Default(), upstream.URL, time.Second)
	assert.NoError(err)

	key := 220980
	blob, err := s.DownloadImage(context.Background(), upstream.URL+"/media/00001.webp", &key, true)
	assert.NoError(err)
	assert.Equal([]byte("image bytes"), blob)
}

func TestDownloadImageUpstreamError(t *testing.T) {
	assert := require.New(t)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	s, err := NewHttpRemoteClient(slog.Default(), upstream.URL, time.Second)
	assert.NoError(err)

	_, err = s.DownloadImage(context.Background(), upstream.URL+"/media/00001.webp", nil, false)
	assert.ErrorIs(err, errors.ErrRemoteFetch)
}
