package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cloudlagoon/lagoon/adapters/http/viewmodels"
	"github.com/cloudlagoon/lagoon/infra"
	"github.com/cloudlagoon/lagoon/ports"
	"github.com/go-chi/chi/v5"
)

// search scopes of the remote site
const (
	mainTagSite   = 0
	mainTagWork   = 1
	mainTagAuthor = 2
	mainTagTag    = 3
	mainTagActor  = 4
)

var searchScopes = map[string]int{
	"work":   mainTagWork,
	"author": mainTagAuthor,
	"tag":    mainTagTag,
	"actor":  mainTagActor,
}

var rankingScopes = map[string]bool{
	"month": true,
	"week":  true,
	"day":   true,
}

type SearchController struct {
	log    ports.Logger
	render infra.Render
	remote ports.RemoteClient
}

func NewSearchController(log ports.Logger, render infra.Render, remote ports.RemoteClient) *SearchController {
	log = log.With(slog.String("entity", "SearchController"))
	s := &SearchController{
		log:    log,
		render: render,
		remote: remote,
	}
	return s
}

// Search handles the site wide album search.
func (c *SearchController) Search(w http.ResponseWriter, r *http.Request) {
	c.search(w, r, mainTagSite)
}

// SearchScoped narrows the search to one scope (work, author, tag, actor).
func (c *SearchController) SearchScoped(w http.ResponseWriter, r *http.Request) {
	scope := chi.URLParam(r, "scope")
	mainTag, ok := searchScopes[scope]
	if !ok {
		_ = c.render.JSON(w, http.StatusNotFound, errorBody{Error: "unknown search scope " + scope})
		return
	}
	c.search(w, r, mainTag)
}

func (c *SearchController) search(w http.ResponseWriter, r *http.Request, mainTag int) {
	q := ports.SearchQuery{
		Query:       r.URL.Query().Get("query"),
		Page:        queryPage(r),
		MainTag:     mainTag,
		OrderBy:     r.URL.Query().Get("order_by"),
		Time:        r.URL.Query().Get("time"),
		Category:    r.URL.Query().Get("category"),
		SubCategory: r.URL.Query().Get("sub_category"),
	}

	page, err := c.remote.Search(r.Context(), q)
	if err != nil {
		renderError(c.render, w, err)
		return
	}
	_ = c.render.JSON(w, http.StatusOK, viewmodels.NewSearchPage(page))
}

func (c *SearchController) Categories(w http.ResponseWriter, r *http.Request) {
	q := ports.CategoryQuery{
		Page:        queryPage(r),
		Time:        r.URL.Query().Get("time"),
		Category:    r.URL.Query().Get("category"),
		OrderBy:     r.URL.Query().Get("order_by"),
		SubCategory: r.URL.Query().Get("sub_category"),
	}

	page, err := c.remote.CategoriesFilter(r.Context(), q)
	if err != nil {
		renderError(c.render, w, err)
		return
	}
	_ = c.render.JSON(w, http.StatusOK, viewmodels.NewSearchPage(page))
}

// Cosplay browses the cosplay category. The remote category filter is
// flaky for it, so an empty answer falls back to a tag search.
func (c *SearchController) Cosplay(w http.ResponseWriter, r *http.Request) {
	q := ports.CategoryQuery{
		Page:        queryPage(r),
		Time:        r.URL.Query().Get("time"),
		Category:    "cosplay",
		OrderBy:     r.URL.Query().Get("order_by"),
		SubCategory: r.URL.Query().Get("sub_category"),
	}

	page, err := c.remote.CategoriesFilter(r.Context(), q)
	if err == nil && len(page.Results) > 0 {
		_ = c.render.JSON(w, http.StatusOK, viewmodels.NewSearchPage(page))
		return
	}
	if err != nil {
		c.log.Warn("cosplay category failed - falling back to tag search", slog.Any("err", err))
	}

	page, err = c.remote.Search(r.Context(), ports.SearchQuery{
		Query:   "cosplay",
		Page:    q.Page,
		MainTag: mainTagTag,
		OrderBy: q.OrderBy,
		Time:    q.Time,
	})
	if err != nil {
		renderError(c.render, w, err)
		return
	}
	_ = c.render.JSON(w, http.StatusOK, viewmodels.NewSearchPage(page))
}

func (c *SearchController) Ranking(w http.ResponseWriter, r *http.Request) {
	scope := chi.URLParam(r, "scope")
	if !rankingScopes[scope] {
		_ = c.render.JSON(w, http.StatusNotFound, errorBody{Error: "unknown ranking scope " + scope})
		return
	}

	page, err := c.remote.Ranking(r.Context(), scope, queryPage(r), r.URL.Query().Get("category"))
	if err != nil {
		renderError(c.render, w, err)
		return
	}
	_ = c.render.JSON(w, http.StatusOK, viewmodels.NewSearchPage(page))
}

func queryPage(r *http.Request) int {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	return page
}
