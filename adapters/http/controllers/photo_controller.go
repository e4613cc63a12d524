package controllers

import (
	"log/slog"
	"net/http"

	"github.com/cloudlagoon/lagoon/adapters/http/viewmodels"
	"github.com/cloudlagoon/lagoon/infra"
	"github.com/cloudlagoon/lagoon/infra/disk"
	"github.com/cloudlagoon/lagoon/ports"
	"github.com/go-chi/chi/v5"
)

type PhotoController struct {
	log     ports.Logger
	render  infra.Render
	catalog CatalogService
	media   MediaService
	layout  disk.Layout
}

func NewPhotoController(log ports.Logger, render infra.Render, catalog CatalogService, media MediaService, layout disk.Layout) *PhotoController {
	log = log.With(slog.String("entity", "PhotoController"))
	s := &PhotoController{
		log:     log,
		render:  render,
		catalog: catalog,
		media:   media,
		layout:  layout,
	}
	return s
}

func (c *PhotoController) Get(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "photoID")

	photo, err := c.catalog.GetPhoto(r.Context(), photoID)
	if err != nil {
		renderError(c.render, w, err)
		return
	}
	_ = c.render.JSON(w, http.StatusOK, viewmodels.NewPhoto(photo))
}

// GetImages lists what is cached for the photo without fetching,
// together with the remote download detail of every page.
func (c *PhotoController) GetImages(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "photoID")

	photo, err := c.catalog.GetPhoto(r.Context(), photoID)
	if err != nil {
		renderError(c.render, w, err)
		return
	}
	paths, err := c.media.CachedPhotoImages(photo.AlbumID, photo.PhotoID)
	if err != nil {
		renderError(c.render, w, err)
		return
	}

	type Data struct {
		PhotoID   string                 `json:"photo_id"`
		PageCount int                    `json:"page_count"`
		Count     int                    `json:"count"`
		URLs      []string               `json:"urls"`
		Images    []viewmodels.PageImage `json:"images"`
	}
	data := Data{
		PhotoID:   photoID,
		PageCount: photo.PageCount(),
		Count:     len(paths),
		URLs:      []string{},
		Images:    viewmodels.NewPageImages(photo.Pages),
	}
	for _, p := range paths {
		data.URLs = append(data.URLs, c.layout.PublicURL(p))
	}
	_ = c.render.JSON(w, http.StatusOK, data)
}

// DownloadImages materializes the full image set of the photo.
func (c *PhotoController) DownloadImages(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "photoID")

	photo, err := c.catalog.GetPhoto(r.Context(), photoID)
	if err != nil {
		renderError(c.render, w, err)
		return
	}
	report, err := c.media.EnsurePhotoImages(r.Context(), photo)
	if err != nil {
		renderError(c.render, w, err)
		return
	}

	_ = c.render.JSON(w, http.StatusOK, viewmodels.NewFetchResult(photoID, report, c.layout.PublicURL))
}

func (c *PhotoController) DeleteImages(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "photoID")

	photo, err := c.catalog.GetPhoto(r.Context(), photoID)
	if err != nil {
		renderError(c.render, w, err)
		return
	}
	names, err := c.media.ClearPhotoImages(photo.AlbumID, photo.PhotoID)
	if err != nil {
		renderError(c.render, w, err)
		return
	}

	type Data struct {
		PhotoID string   `json:"photo_id"`
		Removed []string `json:"removed"`
	}
	_ = c.render.JSON(w, http.StatusOK, Data{PhotoID: photoID, Removed: names})
}
