package infra

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/cloudlagoon/lagoon/domain/errors"
	"github.com/cloudlagoon/lagoon/lib"
	"github.com/cloudlagoon/lagoon/ports"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// WatcherService follows the cache directories on disk. The filesystem is
// the cache index, so files removed or dropped in by hand still must be
// reflected in the published events.
type WatcherService struct {
	id                  string
	log                 ports.Logger
	bus                 ports.EventBus
	chTopicCacheUpdated chan ports.Event
	watcher             *fsnotify.Watcher
	closeWg             sync.WaitGroup
}

func NewWatcherService(id string, log ports.Logger, bus ports.EventBus) (*WatcherService, error) {
	log = log.With(slog.String("entity", "WatcherService"), slog.String("id", id))
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	s := &WatcherService{
		id:                  id,
		log:                 log,
		bus:                 bus,
		chTopicCacheUpdated: bus.Sub(ports.TopicCacheUpdated),
		watcher:             watcher,
	}
	log.Info("created")

	s.closeWg.Add(1)
	go func() {
		defer s.closeWg.Done()
		log.Info("process started")
		defer log.Warn("process complete")
		s.background()
	}()

	return s, nil
}

func (s *WatcherService) Close() {
	if s == nil {
		return
	}
	if s.watcher == nil {
		return
	}

	s.log.Info("closing")
	s.bus.Unsub(s.chTopicCacheUpdated)
	s.watcher.Close()
	s.closeWg.Wait()
	s.watcher = nil
}

func (s *WatcherService) addDir(path string) error {
	log := s.log
	if abspath, err := filepath.Abs(path); abspath != path || err != nil {
		log.Error("add dir failed!!!", slog.Any("err", err), slog.String("path", path), slog.String("abspath", abspath))
		return errors.ErrMustBeAbsPath
	}
	log.Info("add dir", slog.String("path", path))
	err := s.watcher.Add(path)
	if err != nil {
		log.Error("add dir failed!!!", slog.Any("err", err), slog.String("path", path))
	}
	return err
}

func (s *WatcherService) background() {
	log, bus, fs := s.log, s.bus, afero.NewOsFs()
	topicFileModified := fmt.Sprintf("%v-file-modified", s.id)
	topicFileRemoved := fmt.Sprintf("%v-file-removed", s.id)
	for {
		select {
		case event, ok := <-s.chTopicCacheUpdated:
			log.Debug("watcher event", slog.Any("event", event))
			if !ok {
				return
			}
			for _, path := range event {
				s.addDir(path)
			}
		case err, ok := <-s.watcher.Errors:
			if err != nil {
				log.Error("watcher error", slog.Any("err", err))
			}
			if !ok {
				return
			}
		case event, ok := <-s.watcher.Events:
			log.Debug("watcher event", slog.Any("event", event))
			if !ok {
				return
			}

			file := event.Name
			exist, _ := afero.DirExists(fs, file)
			if event.Has(fsnotify.Create) && exist {
				// new album/photo directory - watch it too
				dir := file
				log := log.With(slog.String("dir", dir))
				log.Debug("directory created")
				if err := s.addDir(dir); err != nil {
					log.Error("unable to add recursive dir")
				}
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				size := lib.FileSize(fs, file)
				log.Debug("file modified", slog.String("file", file), slog.Int64("size", size))
				bus.Pub(topicFileModified, ports.Event{file})
			}
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				log.Debug("file removed", slog.String("file", file))
				bus.Pub(topicFileRemoved, ports.Event{file})
			}
		}
	}
}
