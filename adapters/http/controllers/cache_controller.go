package controllers

import (
	"log/slog"
	"net/http"

	"github.com/cloudlagoon/lagoon/adapters/http/viewmodels"
	"github.com/cloudlagoon/lagoon/infra"
	"github.com/cloudlagoon/lagoon/ports"
)

const albumsPerPage = 20

type CacheController struct {
	log     ports.Logger
	render  infra.Render
	catalog CatalogService
}

func NewCacheController(log ports.Logger, render infra.Render, catalog CatalogService) *CacheController {
	log = log.With(slog.String("entity", "CacheController"))
	s := &CacheController{
		log:     log,
		render:  render,
		catalog: catalog,
	}
	return s
}

// Albums lists the albums known to the local catalog.
func (c *CacheController) Albums(w http.ResponseWriter, r *http.Request) {
	albums, err := c.catalog.CachedAlbums()
	if err != nil {
		renderError(c.render, w, err)
		return
	}

	type Data struct {
		Page   int                 `json:"page"`
		Total  int                 `json:"total"`
		Albums []*viewmodels.Album `json:"albums"`
	}
	data := Data{Total: len(albums), Albums: []*viewmodels.Album{}}
	albums, data.Page = helperPagination(r, albums, albumsPerPage)
	for _, album := range albums {
		data.Albums = append(data.Albums, viewmodels.NewAlbum(album))
	}
	_ = c.render.JSON(w, http.StatusOK, data)
}
