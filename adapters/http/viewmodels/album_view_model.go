package viewmodels

import (
	"github.com/cloudlagoon/lagoon/domain/models"
)

type Chapter struct {
	AlbumID models.AlbumID `json:"album_id"`
	PhotoID models.PhotoID `json:"photo_id"`
	Order   int            `json:"order"`
	Index   int            `json:"index"`
	Title   string         `json:"title"`
	PubDate string         `json:"pub_date"`
}

type Album struct {
	AlbumID      models.AlbumID `json:"album_id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Tags         []string       `json:"tags"`
	Authors      []string       `json:"authors"`
	Actors       []string       `json:"actors"`
	Works        []string       `json:"works"`
	Likes        string         `json:"likes"`
	Views        string         `json:"views"`
	CommentCount int            `json:"comment_count"`
	PubDate      string         `json:"pub_date"`
	UpdateDate   string         `json:"update_date"`
	PageCount    int            `json:"page_count"`
	Chapters     []*Chapter     `json:"chapters"`
}

func NewAlbum(model *models.Album) *Album {
	a := &Album{
		AlbumID:      model.AlbumID,
		Title:        model.Title,
		Description:  model.Description,
		Tags:         model.Tags,
		Authors:      model.Authors,
		Actors:       model.Actors,
		Works:        model.Works,
		Likes:        model.Likes,
		Views:        model.Views,
		CommentCount: model.CommentCount,
		PubDate:      model.PubDate,
		UpdateDate:   model.UpdateDate,
		PageCount:    model.PageCount,
		Chapters:     NewChapters(model.Chapters),
	}
	return a
}

func NewChapters(chapters models.Chapters) []*Chapter {
	a := []*Chapter{}
	for _, c := range chapters {
		a = append(a, &Chapter{
			AlbumID: c.AlbumID,
			PhotoID: c.PhotoID,
			Order:   c.Order,
			Index:   c.Index,
			Title:   c.Title,
			PubDate: c.PubDate,
		})
	}
	return a
}
