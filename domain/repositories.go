package domain

type Repositories interface {
	Album() AlbumRepository
	Photo() PhotoRepository
}
