package viewmodels

import (
	"github.com/cloudlagoon/lagoon/domain"
	"github.com/cloudlagoon/lagoon/domain/models"
)

type Photo struct {
	PhotoID   models.PhotoID `json:"photo_id"`
	AlbumID   models.AlbumID `json:"album_id"`
	Title     string         `json:"title"`
	Order     int            `json:"order"`
	Tags      []string       `json:"tags"`
	PageCount int            `json:"page_count"`
}

func NewPhoto(model *models.Photo) *Photo {
	p := &Photo{
		PhotoID:   model.PhotoID,
		AlbumID:   model.AlbumID,
		Title:     model.Title,
		Order:     model.Order,
		Tags:      model.Tags,
		PageCount: model.PageCount(),
	}
	return p
}

// PageImage is the remote download detail of one page, served next to
// the cached listing so clients can fetch pages themselves.
type PageImage struct {
	Index       int    `json:"index"`
	DownloadURL string `json:"download_url"`
	Filename    string `json:"filename"`
	ScrambleKey *int   `json:"scramble_key"`
}

func NewPageImages(pages models.PageImages) []PageImage {
	images := []PageImage{}
	for _, p := range pages {
		images = append(images, PageImage{
			Index:       p.Index,
			DownloadURL: p.DownloadURL,
			Filename:    p.Filename,
			ScrambleKey: p.ScrambleKey,
		})
	}
	return images
}

type FetchFailure struct {
	Identity string `json:"identity"`
	Error    string `json:"error"`
}

// FetchResult is the download response: the image urls present after
// the wave plus whatever failed.
type FetchResult struct {
	PhotoID  models.PhotoID `json:"photo_id"`
	Count    int            `json:"count"`
	Failed   int            `json:"failed"`
	Complete bool           `json:"complete"`
	URLs     []string       `json:"urls"`
	Failures []FetchFailure `json:"failures"`
}

func NewFetchResult(photoID models.PhotoID, report *domain.FetchReport, toURL func(string) string) *FetchResult {
	result := &FetchResult{
		PhotoID:  photoID,
		Count:    len(report.Paths),
		Failed:   len(report.Failures),
		Complete: report.Complete(),
		URLs:     []string{},
		Failures: []FetchFailure{},
	}
	for _, p := range report.Paths {
		result.URLs = append(result.URLs, toURL(p))
	}
	for _, f := range report.Failures {
		result.Failures = append(result.Failures, FetchFailure{
			Identity: f.Identity.String(),
			Error:    f.Err.Error(),
		})
	}
	return result
}
