package lagoon

import (
	"log/slog"
	"testing"
	"time"

	"github.com/cloudlagoon/lagoon/domain/vo"
	"github.com/cloudlagoon/lagoon/infra"
	"github.com/cloudlagoon/lagoon/infra/disk"
	"github.com/cloudlagoon/lagoon/lib/random"
	"github.com/cloudlagoon/lagoon/lib/types"
	"github.com/cloudlagoon/lagoon/ports"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestStatsService(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()
	layout := disk.NewLayout(testRoot, ".jpg")

	// seed the cache before the service starts
	assert.NoError(afero.WriteFile(fs, layout.Resolve(vo.Cover("412510")), random.ByteSlice(10), 0644))
	assert.NoError(afero.WriteFile(fs, layout.Resolve(vo.Thumbnail("412510")), random.ByteSlice(20), 0644))

	var bus ports.EventBus = infra.NewEventBus()
	defer bus.Shutdown()

	s, err := NewStatsService(slog.Default(), bus, fs, layout.PhotosRoot(), layout.ThumbnailsRoot())
	assert.NoError(err)
	defer s.Close()

	stats := s.Snapshot()
	assert.Equal(2, stats.Files)
	assert.Equal(types.Size(30), stats.Bytes)

	// a stored artifact shows up in the footprint
	page := layout.PhotosRoot() + "/412510/412511/00001.jpg"
	assert.NoError(afero.WriteFile(fs, page, random.ByteSlice(40), 0644))
	bus.Pub(ports.TopicArtifactStored, ports.Event{"page 412510/412511/00001", page})
	assert.Eventually(func() bool {
		return s.Snapshot().Files == 3
	}, time.Second, 5*time.Millisecond)
	assert.Equal(types.Size(70), s.Snapshot().Bytes)

	// and disappears again on removal
	bus.Pub(ports.TopicArtifactRemoved, ports.Event{page})
	assert.Eventually(func() bool {
		return s.Snapshot().Files == 2
	}, time.Second, 5*time.Millisecond)
}
