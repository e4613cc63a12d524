package ports

// MediaStorage is the filesystem backed persistence of cached media.
// Paths are canonical locations produced by the disk layout.
type MediaStorage interface {
	// Exists reports whether a committed file is present.
	Exists(path string) bool
	// Remove deletes a file. Removing an absent file is a no-op
	// returning false, never an error.
	Remove(path string) (bool, error)
	// ListBySuffix returns full paths of regular files directly under
	// dir whose name ends with suffix, sorted lexicographically.
	// A missing dir yields an empty list.
	ListBySuffix(dir, suffix string) ([]string, error)
	// WriteFile writes data creating parent directories. Used for
	// temporary downloads which the normalizer consumes and removes.
	WriteFile(path string, data []byte) error
	// WriteFileAtomic commits data so that no partial file is ever
	// visible at path.
	WriteFileAtomic(path string, data []byte) error
	// Open opens a committed file for reading.
	Open(path string) (File, error)
}
