package errors

// The Application return code errors
const (
	RetLoadConfigError            = 10
	RetCreateDatabaseError        = 11
	RetMigrateDatabaseError       = 12
	RetCreateAlbumRepositoryError = 13
	RetCreatePhotoRepositoryError = 14
	RetCreateMediaStorageError    = 15
	RetCreateRemoteClientError    = 16
	RetCreateCacheWatcherError    = 17
	RetCreateLogDirError          = 18
	RetCreateDownloadRootError    = 20
	RetCreateWebServerError       = 40
)
