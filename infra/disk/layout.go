package disk

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cloudlagoon/lagoon/domain/vo"
)

// Layout maps artifact identities to canonical locations under the
// download root:
//
//	<root>/photos/<albumID>/cover<suffix>
//	<root>/thumbnails/<albumID><suffix>
//	<root>/photos/<albumID>/<photoID>/<00001..NNNNN><suffix>
//
// Resolve is pure and injective over valid identities: album and photo
// ids become directory segments, page indices a fixed width name, so no
// two identities share a path and lexical order equals page order.
type Layout struct {
	root   string
	suffix string
}

func NewLayout(root, suffix string) Layout {
	if suffix == "" {
		suffix = ".jpg"
	}
	if !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	return Layout{root: root, suffix: suffix}
}

func (l Layout) Root() string           { return l.root }
func (l Layout) Suffix() string         { return l.suffix }
func (l Layout) PhotosRoot() string     { return filepath.Join(l.root, "photos") }
func (l Layout) ThumbnailsRoot() string { return filepath.Join(l.root, "thumbnails") }

func (l Layout) AlbumDir(albumID string) string {
	return filepath.Join(l.PhotosRoot(), albumID)
}

func (l Layout) PhotoDir(albumID, photoID string) string {
	return filepath.Join(l.PhotosRoot(), albumID, photoID)
}

// PageName is zero padded to five digits so directory listings sort in
// page order for any page count up to 99999.
func (l Layout) PageName(index int) string {
	return fmt.Sprintf("%05d%s", index, l.suffix)
}

func (l Layout) Resolve(id vo.ArtifactIdentity) string {
	switch id.Kind {
	case vo.KindCover:
		return filepath.Join(l.AlbumDir(id.AlbumID), "cover"+l.suffix)
	case vo.KindThumbnail:
		return filepath.Join(l.ThumbnailsRoot(), id.AlbumID+l.suffix)
	case vo.KindPage:
		return filepath.Join(l.PhotoDir(id.AlbumID, id.PhotoID), l.PageName(id.PageIndex))
	}
	panic(fmt.Sprintf("unknown artifact kind %v", id.Kind))
}

// Relative returns the path relative to the download root with forward
// slashes, suitable for response payloads.
func (l Layout) Relative(path string) string {
	rel, err := filepath.Rel(l.root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// PublicURL returns the URL under which the web server exposes the file.
func (l Layout) PublicURL(path string) string {
	return "/downloads/" + l.Relative(path)
}
