package lagoon

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/cloudlagoon/lagoon/domain"
	"github.com/cloudlagoon/lagoon/infra/disk"
	"github.com/cloudlagoon/lagoon/lib/types"
	"github.com/cloudlagoon/lagoon/ports"
)

// StatsService keeps a running account of cached files and bytes.
// It scans the media roots once on start and from then on follows the
// eventbus:
//   - artifact-stored - account the committed file
//   - artifact-removed - drop it
//   - cache-file-modified/removed - external changes seen by the watcher
type StatsService struct {
	log           ports.Logger
	bus           ports.EventBus
	fs            ports.FS
	chStored      chan ports.Event
	chRemoved     chan ports.Event
	chFileChanged chan ports.Event
	chFileRemoved chan ports.Event
	closeWg       sync.WaitGroup
	mu            sync.Mutex
	sizes         map[string]int64
}

func NewStatsService(log ports.Logger, bus ports.EventBus, f ports.FS, roots ...string) (*StatsService, error) {
	log = log.With(slog.String("entity", "StatsService"))

	s := &StatsService{
		log:           log,
		bus:           bus,
		fs:            f,
		chStored:      bus.Sub(ports.TopicArtifactStored),
		chRemoved:     bus.Sub(ports.TopicArtifactRemoved),
		chFileChanged: bus.Sub(ports.TopicCacheFileModified),
		chFileRemoved: bus.Sub(ports.TopicCacheFileRemoved),
		sizes:         map[string]int64{},
	}

	for _, root := range roots {
		if err := s.scan(root); err != nil {
			return nil, err
		}
	}
	stats := s.Snapshot()
	log.Info("created", slog.Int("files", stats.Files), slog.String("bytes", stats.Bytes.String()))

	s.closeWg.Add(1)
	go func() {
		defer s.closeWg.Done()
		log.Info("process started")
		defer log.Warn("process complete")
		s.background()
	}()

	return s, nil
}

func (s *StatsService) Close() {
	s.log.Info("closing")
	s.bus.Unsub(s.chFileRemoved)
	s.bus.Unsub(s.chFileChanged)
	s.bus.Unsub(s.chRemoved)
	s.bus.Unsub(s.chStored)
	s.closeWg.Wait()
}

func (s *StatsService) Snapshot() domain.CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := domain.CacheStats{Files: len(s.sizes)}
	for _, size := range s.sizes {
		stats.Bytes += types.Size(size)
	}
	return stats
}

func (s *StatsService) scan(root string) error {
	walk := disk.NewFilepathWalk(s.fs)
	return walk.Walk(root, func(name string, err error) (bool, error) {
		if err != nil {
			return true, nil
		}
		s.account(name)
		return true, nil
	})
}

func (s *StatsService) background() {
	for {
		select {
		case event, ok := <-s.chStored:
			if !ok {
				return
			}
			// stored events carry identity first, path last
			s.account(event[len(event)-1])
		case event, ok := <-s.chFileChanged:
			if !ok {
				return
			}
			s.account(event[0])
		case event, ok := <-s.chRemoved:
			if !ok {
				return
			}
			s.drop(event[0])
		case event, ok := <-s.chFileRemoved:
			if !ok {
				return
			}
			s.drop(event[0])
		}
	}
}

// account records the current size of name. Directories and files in
// flight are not part of the footprint.
func (s *StatsService) account(name string) {
	if strings.HasSuffix(name, ".part") {
		return
	}
	fi, err := s.fs.Stat(name)
	if err != nil || fi.IsDir() {
		return
	}
	s.mu.Lock()
	s.sizes[name] = fi.Size()
	s.mu.Unlock()
}

func (s *StatsService) drop(name string) {
	s.mu.Lock()
	delete(s.sizes, name)
	s.mu.Unlock()
}
