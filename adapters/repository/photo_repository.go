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

type PhotoRepository struct {
	db        ports.DB
	validator *validator.Validate
}

func NewPhotoRepository(db ports.DB) (*PhotoRepository, error) {
	r := &PhotoRepository{
		db:        db,
		validator: lib.NewValidator(),
	}
	_, err := r.FindAll()
	return r, err
}

func (r *PhotoRepository) Upsert(model *models.Photo) error {
	err := r.db.Transaction(func(db *gorm.DB) error {
		if err := model.Validate(r.validator); err != nil {
			return fmt.Errorf("invalid photo object: %w", err)
		}

		// replace pages wholesale - remote ordering is authoritative
		if err := db.Where("photo_id = ?", model.PhotoID).Delete(&models.PageImage{}).Error; err != nil {
			return err
		}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error; err != nil {
			return fmt.Errorf("unable to save photo object: %w", err)
		}
		return nil
	})
	return err
}

func (r *PhotoRepository) Delete(model *models.Photo) error {
	err := r.db.Transaction(func(db *gorm.DB) error {
		if err := db.Where("photo_id = ?", model.PhotoID).Delete(&models.PageImage{}).Error; err != nil {
			return err
		}
		return db.Delete(model).Error
	})
	return err
}

func (r *PhotoRepository) FindAll() ([]*models.Photo, error) {
	var photos []*models.Photo
	err := r.db.Transaction(func(tx *gorm.DB) error {
		db := tx.Order("photo_id ASC")
		return db.Find(&photos).Error
	})
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PhotoRepository) FindByID(photoID models.PhotoID) (*models.Photo, error) {
	model := &models.Photo{}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		db := tx.Preload("Pages", func(db ports.DB) ports.DB {
			return db.Order("`index` ASC")
		})
		return db.First(model, "photo_id = ?", photoID).Error
	})
	if err != nil {
		return nil, err
	}
	return model, nil
}
