package models

import (
	"github.com/cloudlagoon/lagoon/domain/errors"
	"github.com/cloudlagoon/lagoon/lib/types"
	"github.com/go-playground/validator/v10"
)

type PhotoID = string

const EmptyPhotoID = PhotoID("")

type Photos []*Photo

// Photo is remote photo (chapter) metadata including the per page
// download details needed to materialize its images.
type Photo struct {
	PhotoID    PhotoID          `gorm:"primaryKey;not null" json:"photo_id" validate:"required,validid"`
	AlbumID    AlbumID          `gorm:"index;not null" json:"album_id" validate:"required,validid"`
	Title      string           `gorm:"string" json:"title"`
	Order      int              `gorm:"int" json:"order" validate:"min=0"`
	Tags       types.StringList `gorm:"type:text" json:"tags"`
	ScrambleID string           `gorm:"string" json:"scramble_id"`
	Pages      PageImages       `gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE;" json:"images" validate:"-"`
}

// PageCount is the expected size of the full image set.
func (model *Photo) PageCount() int {
	return len(model.Pages)
}

func (model *Photo) Validate(val *validator.Validate) error {
	err := val.Struct(model)
	if err != nil {
		return err
	}

	for _, p := range model.Pages {
		if p.PhotoID == "" {
			p.PhotoID = model.PhotoID
			continue
		}
		if p.PhotoID != model.PhotoID {
			return errors.ErrIncorrectPageID
		}
	}

	return nil
}

type PageImages []*PageImage

// PageImage is the download detail of a single page. Index is 1-based
// and contiguous once the photo metadata is known.
type PageImage struct {
	PhotoID     PhotoID `gorm:"primaryKey;not null" json:"photo_id" validate:"required,validid"`
	Index       int     `gorm:"primaryKey" json:"index" validate:"min=1"`
	DownloadURL string  `gorm:"not null" json:"download_url" validate:"required"`
	Filename    string  `gorm:"string" json:"filename"`
	ScrambleKey *int    `gorm:"int" json:"scramble_key"`
}
