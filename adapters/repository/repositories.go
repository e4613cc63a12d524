package repository

import "github.com/cloudlagoon/lagoon/domain"

type Repositories struct {
	album domain.AlbumRepository
	photo domain.PhotoRepository
}

func NewRepositories(album domain.AlbumRepository, photo domain.PhotoRepository) *Repositories {
	r := &Repositories{
		album: album,
		photo: photo,
	}

	return r
}

func (r *Repositories) Album() domain.AlbumRepository {
	return r.album
}

func (r *Repositories) Photo() domain.PhotoRepository {
	return r.photo
}
