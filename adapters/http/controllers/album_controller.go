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

const chaptersPerPage = 50

type AlbumController struct {
	log     ports.Logger
	render  infra.Render
	catalog CatalogService
	media   MediaService
	layout  disk.Layout
}

func NewAlbumController(log ports.Logger, render infra.Render, catalog CatalogService, media MediaService, layout disk.Layout) *AlbumController {
	log = log.With(slog.String("entity", "AlbumController"))
	s := &AlbumController{
		log:     log,
		render:  render,
		catalog: catalog,
		media:   media,
		layout:  layout,
	}
	return s
}

func (c *AlbumController) Get(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "albumID")

	album, err := c.catalog.GetAlbum(r.Context(), albumID)
	if err != nil {
		renderError(c.render, w, err)
		return
	}
	_ = c.render.JSON(w, http.StatusOK, viewmodels.NewAlbum(album))
}

func (c *AlbumController) Chapters(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "albumID")

	album, err := c.catalog.GetAlbum(r.Context(), albumID)
	if err != nil {
		renderError(c.render, w, err)
		return
	}

	type Data struct {
		AlbumID  string                `json:"album_id"`
		Page     int                   `json:"page"`
		Total    int                   `json:"total"`
		Chapters []*viewmodels.Chapter `json:"chapters"`
	}
	chapters := viewmodels.NewChapters(album.Chapters)
	total := len(chapters)
	chapters, page := helperPagination(r, chapters, chaptersPerPage)
	_ = c.render.JSON(w, http.StatusOK, Data{AlbumID: albumID, Page: page, Total: total, Chapters: chapters})
}

func (c *AlbumController) GetCover(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "albumID")

	album, err := c.catalog.GetAlbum(r.Context(), albumID)
	if err != nil {
		renderError(c.render, w, err)
		return
	}
	path, err := c.media.EnsureCover(r.Context(), album)
	if err != nil {
		renderError(c.render, w, err)
		return
	}

	type Data struct {
		AlbumID string `json:"album_id"`
		URL     string `json:"url"`
	}
	_ = c.render.JSON(w, http.StatusOK, Data{AlbumID: albumID, URL: c.layout.PublicURL(path)})
}

func (c *AlbumController) DeleteCover(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "albumID")

	removed, err := c.media.DeleteCover(albumID)
	if err != nil {
		renderError(c.render, w, err)
		return
	}
	c.renderRemoved(w, albumID, removed)
}

func (c *AlbumController) PostThumbnail(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "albumID")

	album, err := c.catalog.GetAlbum(r.Context(), albumID)
	if err != nil {
		renderError(c.render, w, err)
		return
	}
	path, err := c.media.EnsureThumbnail(r.Context(), album)
	if err != nil {
		renderError(c.render, w, err)
		return
	}

	type Data struct {
		AlbumID string `json:"album_id"`
		URL     string `json:"url"`
	}
	_ = c.render.JSON(w, http.StatusOK, Data{AlbumID: albumID, URL: c.layout.PublicURL(path)})
}

func (c *AlbumController) DeleteThumbnail(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "albumID")

	removed, err := c.media.DeleteThumbnail(albumID)
	if err != nil {
		renderError(c.render, w, err)
		return
	}
	c.renderRemoved(w, albumID, removed)
}

func (c *AlbumController) renderRemoved(w http.ResponseWriter, albumID string, removed bool) {
	type Data struct {
		AlbumID string `json:"album_id"`
		Removed bool   `json:"removed"`
	}
	_ = c.render.JSON(w, http.StatusOK, Data{AlbumID: albumID, Removed: removed})
}
