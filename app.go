package lagoon

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudlagoon/lagoon/adapters"
	"github.com/cloudlagoon/lagoon/adapters/http"
	"github.com/cloudlagoon/lagoon/adapters/http/controllers"
	"github.com/cloudlagoon/lagoon/adapters/remote"
	"github.com/cloudlagoon/lagoon/adapters/repository"
	"github.com/cloudlagoon/lagoon/domain/errors"
	"github.com/cloudlagoon/lagoon/domain/models"
	"github.com/cloudlagoon/lagoon/infra"
	"github.com/cloudlagoon/lagoon/infra/config"
	"github.com/cloudlagoon/lagoon/infra/disk"
	"github.com/cloudlagoon/lagoon/lib"
	"github.com/cloudlagoon/lagoon/ports"
	"github.com/spf13/afero"
)

// App wires the whole server together and blocks until ctrl-c.
func App(log ports.Logger) error {
	var realFS ports.FS = afero.NewOsFs()

	// EventBus
	var bus ports.EventBus = infra.NewEventBus()
	defer bus.Shutdown()

	// Load configuration
	cfg, err := config.LoadConfig(log, realFS)
	if err != nil {
		log.Error("unable to load config!!!", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetLoadConfigError)
	}

	// Duplicate logs into the daily log file
	if err := realFS.MkdirAll(cfg.Logging.Dir, os.ModePerm); err != nil {
		log.Error("unable to create log dir", slog.Any("err", err), slog.String("dir", cfg.Logging.Dir))
		return lib.NewErrorCode(err, errors.RetCreateLogDirError)
	}
	log, closeLog := infra.WithDailyFile(log, cfg.Logging.Dir)
	defer func() { _ = closeLog() }()

	// The layout owns every path under the download root
	layout := disk.NewLayout(cfg.Download.Root, cfg.Download.Image.Suffix)

	// Open database
	driver := infra.DriverSqlite
	source := infra.SourceSqliteInMemory
	db, closeDb, err := infra.NewDatabase(log, driver, source)
	if err != nil {
		log.Error("unable to create database", slog.Any("err", err), slog.String("driver", driver), slog.String("source", source))
		return lib.NewErrorCode(err, errors.RetCreateDatabaseError)
	}
	defer closeDb()
	// Sync database
	if err := db.AutoMigrate(new(models.Album), new(models.Chapter), new(models.Photo), new(models.PageImage)); err != nil {
		log.Error("unable sync database", slog.Any("err", err), slog.String("driver", driver), slog.String("source", source))
		return lib.NewErrorCode(err, errors.RetMigrateDatabaseError)
	}
	// Create repositories
	albumRepository, err := repository.NewAlbumRepository(db)
	if err != nil {
		log.Error("unable create album repository", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateAlbumRepositoryError)
	}
	photoRepository, err := repository.NewPhotoRepository(db)
	if err != nil {
		log.Error("unable create photo repository", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreatePhotoRepositoryError)
	}
	repositories := repository.NewRepositories(albumRepository, photoRepository)

	// Create media storage and normalizer
	mediaStorage, err := adapters.NewBasicMediaStorageAdapter(log, realFS)
	if err != nil {
		log.Error("unable to create media storage", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateMediaStorageError)
	}
	normalizer, err := adapters.NewJpegImageNormalizerAdapter(log, realFS)
	if err != nil {
		log.Error("unable to create image normalizer", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateMediaStorageError)
	}
	// Create remote client
	remoteClient, err := remote.NewHttpRemoteClient(log, cfg.Remote.BaseURL, time.Duration(cfg.Remote.Timeout))
	if err != nil {
		log.Error("unable to create remote client", slog.Any("err", err), slog.String("baseURL", cfg.Remote.BaseURL))
		return lib.NewErrorCode(err, errors.RetCreateRemoteClientError)
	}

	// Create services
	mediaService, err := NewMediaService(log, bus, mediaStorage, normalizer, remoteClient, layout,
		cfg.Download.Cache, cfg.Download.Image.Decode, cfg.Download.Threading.Image)
	if err != nil {
		log.Error("unable to create media service", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateMediaStorageError)
	}
	catalogService, err := NewCatalogService(log, remoteClient, repositories, cfg.Download.Cache)
	if err != nil {
		log.Error("unable to create catalog service", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateDatabaseError)
	}
	statsService, err := NewStatsService(log, bus, realFS, layout.PhotosRoot(), layout.ThumbnailsRoot())
	if err != nil {
		log.Error("unable to create stats service", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateDownloadRootError)
	}
	defer statsService.Close()
	// Create filesystem watcher for external cache changes
	cacheWatcher, err := infra.NewWatcherService("cache", log, bus)
	if err != nil {
		log.Error("unable to create new watcher service", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateCacheWatcherError)
	}
	defer cacheWatcher.Close()

	// Perform neccesery startup operations
	if err := startup(log, bus, realFS, layout); err != nil {
		return err
	}

	// Create router
	router := http.NewRouter(log)
	// Create render object
	render := infra.NewRender()
	// Create controllers
	healthController := controllers.NewHealthController(log, render, statsService)
	searchController := controllers.NewSearchController(log, render, remoteClient)
	albumController := controllers.NewAlbumController(log, render, catalogService, mediaService, layout)
	photoController := controllers.NewPhotoController(log, render, catalogService, mediaService, layout)
	cacheController := controllers.NewCacheController(log, render, catalogService)
	// Add routes
	router.Get("/healthz", healthController.Get)
	router.Get("/api/albums", searchController.Search)
	router.Get("/api/albums/{albumID}", albumController.Get)
	router.Get("/api/albums/{albumID}/chapters", albumController.Chapters)
	router.Get("/api/albums/{albumID}/cover", albumController.GetCover)
	router.Delete("/api/albums/{albumID}/cover", albumController.DeleteCover)
	router.Post("/api/albums/{albumID}/thumbnail", albumController.PostThumbnail)
	router.Delete("/api/albums/{albumID}/thumbnail", albumController.DeleteThumbnail)
	router.Get("/api/photos/{photoID}", photoController.Get)
	router.Get("/api/photos/{photoID}/images", photoController.GetImages)
	router.Post("/api/photos/{photoID}/images/download", photoController.DownloadImages)
	router.Delete("/api/photos/{photoID}/images", photoController.DeleteImages)
	router.Get("/api/search/{scope}", searchController.SearchScoped)
	router.Get("/api/categories", searchController.Categories)
	router.Get("/api/categories/cosplay", searchController.Cosplay)
	router.Get("/api/rankings/{scope}", searchController.Ranking)
	router.Get("/api/cache/albums", cacheController.Albums)
	// Static file handler over the download root
	router.Handle("/downloads/*", http.FileServer("/downloads/", realFS, layout.Root()))
	// Create http server
	// The router must has all routes already
	// It will start server in separate goroutine
	addr := cfg.Listen
	httpServer, err := infra.NewWebServer(log, addr, router)
	if err != nil {
		log.Error("unable create web server", slog.Any("err", err), slog.String("addr", addr))
		return lib.NewErrorCode(err, errors.RetCreateWebServerError)
	}

	// Add ctrl-c shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	log.Info("press ctrl-c to exit")
	// Wait for ctrl-c
	<-c

	// Close http server
	httpServer.Close()

	// Close watcher by ctrl-c
	cacheWatcher.Close()
	return nil
}
