package models

import (
	"github.com/cloudlagoon/lagoon/domain/errors"
	"github.com/cloudlagoon/lagoon/lib/types"
	"github.com/go-playground/validator/v10"
)

type AlbumID = string

const EmptyAlbumID = AlbumID("")

type Albums []*Album

// Album is remote album metadata as last seen through the API.
type Album struct {
	AlbumID      AlbumID          `gorm:"primaryKey;not null" json:"album_id" validate:"required,validid"`
	Title        string           `gorm:"not null" json:"title" validate:"required"`
	Description  string           `gorm:"string" json:"description"`
	Tags         types.StringList `gorm:"type:text" json:"tags"`
	Authors      types.StringList `gorm:"type:text" json:"authors"`
	Actors       types.StringList `gorm:"type:text" json:"actors"`
	Works        types.StringList `gorm:"type:text" json:"works"`
	Likes        string           `gorm:"string" json:"likes"`
	Views        string           `gorm:"string" json:"views"`
	CommentCount int              `gorm:"int" json:"comment_count" validate:"min=0"`
	PubDate      string           `gorm:"string" json:"pub_date"`
	UpdateDate   string           `gorm:"string" json:"update_date"`
	PageCount    int              `gorm:"int" json:"page_count" validate:"min=0"`
	CoverURL     string           `gorm:"string" json:"cover_url"`
	Chapters     Chapters         `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE;" json:"chapters" validate:"-"`
}

func (model *Album) Validate(val *validator.Validate) error {
	err := val.Struct(model)
	if err != nil {
		return err
	}

	for _, c := range model.Chapters {
		if c.AlbumID == "" {
			c.AlbumID = model.AlbumID
			continue
		}
		if c.AlbumID != model.AlbumID {
			return errors.ErrIncorrectChapterID
		}
	}

	return nil
}

type Chapters []*Chapter

// Chapter is one episode of an album pointing to its photo set.
type Chapter struct {
	AlbumID AlbumID `gorm:"primaryKey;not null" json:"album_id" validate:"required,validid"`
	PhotoID PhotoID `gorm:"primaryKey;not null" json:"photo_id" validate:"required,validid"`
	Order   int     `gorm:"int" json:"order" validate:"min=0"`
	Index   int     `gorm:"int" json:"index" validate:"min=0"`
	Title   string  `gorm:"string" json:"title"`
	PubDate string  `gorm:"string" json:"pub_date"`
}
