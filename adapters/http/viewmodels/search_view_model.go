package viewmodels

import (
	"github.com/cloudlagoon/lagoon/domain/models"
)

type AlbumSummary struct {
	AlbumID    models.AlbumID `json:"album_id"`
	Title      string         `json:"title"`
	Tags       []string       `json:"tags"`
	Authors    []string       `json:"authors"`
	Category   string         `json:"category"`
	CoverURL   string         `json:"cover_url"`
	Views      string         `json:"view_count"`
	Likes      string         `json:"like_count"`
	LastUpdate string         `json:"last_update"`
}

type SearchPage struct {
	Page      int             `json:"page"`
	PageSize  int             `json:"page_size"`
	PageCount int             `json:"page_count"`
	Total     int             `json:"total"`
	Results   []*AlbumSummary `json:"results"`
}

func NewSearchPage(model *models.SearchPage) *SearchPage {
	page := &SearchPage{
		Page:      model.Page,
		PageSize:  model.PageSize,
		PageCount: model.PageCount,
		Total:     model.Total,
		Results:   []*AlbumSummary{},
	}
	for _, r := range model.Results {
		page.Results = append(page.Results, &AlbumSummary{
			AlbumID:    r.AlbumID,
			Title:      r.Title,
			Tags:       r.Tags,
			Authors:    r.Authors,
			Category:   r.Category,
			CoverURL:   r.CoverURL,
			Views:      r.Views,
			Likes:      r.Likes,
			LastUpdate: r.LastUpdate,
		})
	}
	return page
}
