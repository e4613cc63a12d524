package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cloudlagoon/lagoon/domain/errors"
	"github.com/cloudlagoon/lagoon/domain/models"
	"github.com/cloudlagoon/lagoon/lib"
	"github.com/cloudlagoon/lagoon/ports"
)

// HttpRemoteClient talks to the remote comic gateway over its JSON api.
type HttpRemoteClient struct {
	log     ports.Logger
	baseURL string
	client  *http.Client
}

func NewHttpRemoteClient(log ports.Logger, baseURL string, timeout time.Duration) (*HttpRemoteClient, error) {
	lib.Assert(baseURL != "")
	log = log.With(slog.String("entity", "HttpRemoteClient"))
	s := &HttpRemoteClient{
		log:     log,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}

	return s, nil
}

func (s *HttpRemoteClient) GetAlbumDetail(ctx context.Context, albumID models.AlbumID) (*models.Album, error) {
	model := &models.Album{}
	err := s.getJSON(ctx, "/albums/"+url.PathEscape(albumID), nil, model)
	if err != nil {
		return nil, err
	}
	return model, nil
}

func (s *HttpRemoteClient) GetPhotoDetail(ctx context.Context, photoID models.PhotoID) (*models.Photo, error) {
	model := &models.Photo{}
	err := s.getJSON(ctx, "/photos/"+url.PathEscape(photoID), nil, model)
	if err != nil {
		return nil, err
	}
	return model, nil
}

func (s *HttpRemoteClient) Search(ctx context.Context, q ports.SearchQuery) (*models.SearchPage, error) {
	query := url.Values{}
	query.Set("query", q.Query)
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("main_tag", strconv.Itoa(q.MainTag))
	setOptional(query, "order_by", q.OrderBy)
	setOptional(query, "time", q.Time)
	setOptional(query, "category", q.Category)
	setOptional(query, "sub_category", q.SubCategory)

	page := &models.SearchPage{}
	err := s.getJSON(ctx, "/search", query, page)
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (s *HttpRemoteClient) CategoriesFilter(ctx context.Context, q ports.CategoryQuery) (*models.SearchPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	setOptional(query, "time", q.Time)
	setOptional(query, "category", q.Category)
	setOptional(query, "order_by", q.OrderBy)
	setOptional(query, "sub_category", q.SubCategory)

	page := &models.SearchPage{}
	err := s.getJSON(ctx, "/categories", query, page)
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (s *HttpRemoteClient) Ranking(ctx context.Context, scope string, page int, category string) (*models.SearchPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	setOptional(query, "category", category)

	result := &models.SearchPage{}
	err := s.getJSON(ctx, "/rankings/"+url.PathEscape(scope), query, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *HttpRemoteClient) DownloadCover(ctx context.Context, albumID models.AlbumID) ([]byte, error) {
	return s.getBlob(ctx, s.baseURL+"/albums/"+url.PathEscape(albumID)+"/cover", nil)
}

// DownloadImage fetches one page image. The gateway descrambles the
// image itself when asked to, so the scramble key travels as an opaque
// query parameter.
func (s *HttpRemoteClient) DownloadImage(ctx context.Context, imageURL string, scrambleKey *int, decode bool) ([]byte, error) {
	query := url.Values{}
	if decode {
		query.Set("decode", "true")
	}
	if scrambleKey != nil {
		query.Set("scramble_key", strconv.Itoa(*scrambleKey))
	}
	return s.getBlob(ctx, imageURL, query)
}

func (s *HttpRemoteClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	blob, err := s.getBlob(ctx, s.baseURL+path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(blob, out); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrRemoteFetch, err)
	}
	return nil
}

func (s *HttpRemoteClient) getBlob(ctx context.Context, fullURL string, query url.Values) ([]byte, error) {
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(fullURL, "?") {
			sep = "&"
		}
		fullURL = fullURL + sep + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrRemoteFetch, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		s.log.Warn("remote error", slog.String("url", fullURL), slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %v", errors.ErrRemoteFetch, resp.StatusCode)
	}

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrRemoteFetch, err)
	}
	return blob, nil
}

func setOptional(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
