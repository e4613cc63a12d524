package domain

import "github.com/cloudlagoon/lagoon/domain/models"

type PhotoRepository interface {
	Upsert(model *models.Photo) error
	Delete(model *models.Photo) error
	FindAll() ([]*models.Photo, error)
	FindByID(photoID models.PhotoID) (*models.Photo, error)
}
