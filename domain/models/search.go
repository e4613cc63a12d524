package models

// SearchPage is one page of remote search/category/ranking results.
// It is never persisted - the upstream site owns pagination.
type SearchPage struct {
	Page      int             `json:"page"`
	PageSize  int             `json:"page_size"`
	PageCount int             `json:"page_count"`
	Total     int             `json:"total"`
	Results   []*AlbumSummary `json:"results"`
}

// AlbumSummary is the short album form carried by search results.
type AlbumSummary struct {
	AlbumID    AlbumID  `json:"album_id"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags"`
	Authors    []string `json:"authors"`
	Category   string   `json:"category"`
	CoverURL   string   `json:"cover_url"`
	Views      string   `json:"view_count"`
	Likes      string   `json:"like_count"`
	LastUpdate string   `json:"last_update"`
}
