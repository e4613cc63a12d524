package adapters

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	_ "image/gif"

	"github.com/cloudlagoon/lagoon/domain/errors"
	"github.com/cloudlagoon/lagoon/lib"
	"github.com/cloudlagoon/lagoon/ports"

	_ "golang.org/x/image/webp"
)

const jpegQuality = 90

// JpegImageNormalizerAdapter re-encodes downloaded images into the
// canonical suffix of the cache. Any decodable input (jpeg, png, gif,
// webp) is accepted.
type JpegImageNormalizerAdapter struct {
	log ports.Logger
	fs  ports.FS
}

func NewJpegImageNormalizerAdapter(log ports.Logger, f ports.FS) (*JpegImageNormalizerAdapter, error) {
	log = log.With(slog.String("entity", "JpegImageNormalizerAdapter"))
	s := &JpegImageNormalizerAdapter{
		log: log,
		fs:  f,
	}

	return s, nil
}

func (s *JpegImageNormalizerAdapter) Normalize(sourcePath, targetPath string) error {
	lib.Assert(sourcePath != "")
	lib.Assert(targetPath != "")
	if sourcePath == targetPath {
		return nil
	}
	// source is consumed whatever the outcome
	defer func() { _ = s.fs.Remove(sourcePath) }()

	img, err := s.decode(sourcePath)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrFormatConversion, err)
	}

	tmp := targetPath + ".part"
	if err := s.encode(tmp, targetPath, img); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("%w: %v", errors.ErrFormatConversion, err)
	}
	if err := s.fs.Rename(tmp, targetPath); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}

	return nil
}

func (s *JpegImageNormalizerAdapter) decode(path string) (image.Image, error) {
	file, err := s.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	return img, err
}

func (s *JpegImageNormalizerAdapter) encode(tmp, targetPath string, img image.Image) error {
	if err := s.fs.MkdirAll(filepath.Dir(targetPath), os.ModePerm); err != nil {
		return err
	}
	file, err := s.fs.Create(tmp)
	if err != nil {
		return err
	}
	defer file.Close()

	switch filepath.Ext(targetPath) {
	case ".png":
		return png.Encode(file, img)
	default:
		// jpeg has no alpha - flatten onto opaque canvas
		rgba := image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
		return jpeg.Encode(file, rgba, &jpeg.Options{Quality: jpegQuality})
	}
}
