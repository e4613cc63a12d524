package lagoon

import (
	"log/slog"
	"os"

	"github.com/cloudlagoon/lagoon/domain/errors"
	"github.com/cloudlagoon/lagoon/infra/disk"
	"github.com/cloudlagoon/lagoon/lib"
	"github.com/cloudlagoon/lagoon/ports"
)

func startup(log ports.Logger, bus ports.EventBus, f ports.FS, layout disk.Layout) error {
	//
	// Create the media roots and put them under watch
	//
	for _, root := range []string{layout.PhotosRoot(), layout.ThumbnailsRoot()} {
		log := log.With(slog.String("root", root))

		if err := f.MkdirAll(root, os.ModePerm); err != nil {
			log.Error("unable create media root", slog.Any("err", err))
			return lib.NewErrorCode(err, errors.RetCreateDownloadRootError)
		}
		// Emit event to start watching the root
		bus.Pub(ports.TopicCacheUpdated, ports.Event{root})
	}

	return nil
}
