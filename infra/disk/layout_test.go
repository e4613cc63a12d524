package disk

import (
	"sort"
	"testing"

	"github.com/cloudlagoon/lagoon/domain/vo"
	"github.com/stretchr/testify/require"
)

func TestLayoutResolve(t *testing.T) {
	assert := require.New(t)
	l := NewLayout("/var/lib/lagoon", ".jpg")

	assert.Equal("/var/lib/lagoon/photos/412510/cover.jpg", l.Resolve(vo.Cover("412510")))
	assert.Equal("/var/lib/lagoon/thumbnails/412510.jpg", l.Resolve(vo.Thumbnail("412510")))
	assert.Equal("/var/lib/lagoon/photos/412510/412511/00007.jpg", l.Resolve(vo.Page("412510", "412511", 7)))

	// resolving twice gives the same path
	assert.Equal(l.Resolve(vo.Page("412510", "412511", 7)), l.Resolve(vo.Page("412510", "412511", 7)))
}

func TestLayoutSuffixNormalization(t *testing.T) {
	assert := require.New(t)

	assert.Equal(".jpg", NewLayout("/data", "").Suffix())
	assert.Equal(".png", NewLayout("/data", "png").Suffix())
	assert.Equal(".webp", NewLayout("/data", ".webp").Suffix())
}

func TestLayoutDistinctIdentities(t *testing.T) {
	assert := require.New(t)
	l := NewLayout("/var/lib/lagoon", ".jpg")

	ids := []vo.ArtifactIdentity{
		vo.Cover("1"),
		vo.Thumbnail("1"),
		vo.Page("1", "1", 1),
		vo.Page("1", "1", 2),
		vo.Page("1", "2", 1),
		vo.Page("2", "1", 1),
	}
	seen := map[string]bool{}
	for _, id := range ids {
		path := l.Resolve(id)
		assert.False(seen[path], "duplicate path %v for %v", path, id)
		seen[path] = true
	}
}

func TestLayoutPageOrder(t *testing.T) {
	assert := require.New(t)
	l := NewLayout("/var/lib/lagoon", ".jpg")

	// lexical order of page names equals page order
	names := []string{}
	for _, index := range []int{100, 2, 99999, 1, 10} {
		names = append(names, l.PageName(index))
	}
	sorted := append([]string{}, names...)
	sort.Strings(sorted)
	assert.Equal([]string{l.PageName(1), l.PageName(2), l.PageName(10), l.PageName(100), l.PageName(99999)}, sorted)
}

func TestLayoutPublicURL(t *testing.T) {
	assert := require.New(t)
	l := NewLayout("/var/lib/lagoon", ".jpg")

	path := l.Resolve(vo.Page("412510", "412511", 1))
	assert.Equal("/downloads/photos/412510/412511/00001.jpg", l.PublicURL(path))
}
