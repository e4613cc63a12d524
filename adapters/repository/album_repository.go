package repository

import (
	"fmt"

	"github.com/cloudlagoon/lagoon/domain/models"
	"github.com/cloudlagoon/lagoon/lib"
	"github.com/cloudlagoon/lagoon/ports"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AlbumRepository struct {
	db        ports.DB
	validator *validator.Validate
}

func NewAlbumRepository(db ports.DB) (*AlbumRepository, error) {
	r := &AlbumRepository{
		db:        db,
		validator: lib.NewValidator(),
	}
	_, err := r.FindAll()
	return r, err
}

func (r *AlbumRepository) Upsert(model *models.Album) error {
	err := r.db.Transaction(func(db *gorm.DB) error {
		if err := model.Validate(r.validator); err != nil {
			return fmt.Errorf("invalid album object: %w", err)
		}

		// replace chapters wholesale - remote ordering is authoritative
		if err := db.Where("album_id = ?", model.AlbumID).Delete(&models.Chapter{}).Error; err != nil {
			return err
		}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error; err != nil {
			return fmt.Errorf("unable to save album object: %w", err)
		}
		return nil
	})
	return err
}

func (r *AlbumRepository) Delete(model *models.Album) error {
	err := r.db.Transaction(func(db *gorm.DB) error {
		if err := db.Where("album_id = ?", model.AlbumID).Delete(&models.Chapter{}).Error; err != nil {
			return err
		}
		return db.Delete(model).Error
	})
	return err
}

func (r *AlbumRepository) FindAll() ([]*models.Album, error) {
	var albums []*models.Album
	err := r.db.Transaction(func(tx *gorm.DB) error {
		db := tx.Order("album_id ASC")
		return db.Find(&albums).Error
	})
	if err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *AlbumRepository) FindByID(albumID models.AlbumID) (*models.Album, error) {
	model := &models.Album{}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		db := tx.Preload("Chapters", func(db ports.DB) ports.DB {
			return db.Order("`order` ASC")
		})
		return db.First(model, "album_id = ?", albumID).Error
	})
	if err != nil {
		return nil, err
	}
	return model, nil
}
