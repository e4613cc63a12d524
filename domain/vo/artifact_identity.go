package vo

import "fmt"

type ArtifactKind int

const (
	KindCover ArtifactKind = iota
	KindThumbnail
	KindPage
)

func (k ArtifactKind) String() string {
	switch k {
	case KindCover:
		return "cover"
	case KindThumbnail:
		return "thumbnail"
	case KindPage:
		return "page"
	}
	return "unknown"
}

// ArtifactIdentity is the immutable key of one storable unit.
// PageIndex is 1-based and only meaningful for KindPage.
type ArtifactIdentity struct {
	Kind      ArtifactKind
	AlbumID   string
	PhotoID   string
	PageIndex int
}

func Cover(albumID string) ArtifactIdentity {
	return ArtifactIdentity{Kind: KindCover, AlbumID: albumID}
}

func Thumbnail(albumID string) ArtifactIdentity {
	return ArtifactIdentity{Kind: KindThumbnail, AlbumID: albumID}
}

func Page(albumID, photoID string, index int) ArtifactIdentity {
	return ArtifactIdentity{Kind: KindPage, AlbumID: albumID, PhotoID: photoID, PageIndex: index}
}

func (id ArtifactIdentity) String() string {
	switch id.Kind {
	case KindPage:
		return fmt.Sprintf("page %v/%v/%05d", id.AlbumID, id.PhotoID, id.PageIndex)
	default:
		return fmt.Sprintf("%v %v", id.Kind, id.AlbumID)
	}
}
