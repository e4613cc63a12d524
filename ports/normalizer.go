package ports

// ImageNormalizer converts a downloaded image into the canonical stored
// encoding. Normalize is a no-op when source and target are the same
// path with the same suffix; otherwise the source file is always removed,
// on success and on failure alike.
type ImageNormalizer interface {
	Normalize(sourcePath, targetPath string) error
}
