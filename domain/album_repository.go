package domain

import "github.com/cloudlagoon/lagoon/domain/models"

type AlbumRepository interface {
	Upsert(model *models.Album) error
	Delete(model *models.Album) error
	FindAll() ([]*models.Album, error)
	FindByID(albumID models.AlbumID) (*models.Album, error)
}
