package adapters

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudlagoon/lagoon/domain/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func pngBlob(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for x := 0; x < 8; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 32), B: 128, A: 255})
		}
	}
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestNormalizePngToJpeg(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()
	s, err := NewJpegImageNormalizerAdapter(slog.Default(), fs)
	assert.NoError(err)

	assert.NoError(afero.WriteFile(fs, "/tmp/00001.png", pngBlob(t), 0644))
	assert.NoError(s.Normalize("/tmp/00001.png", "/photos/a1/p1/00001.jpg"))

	// source consumed, target committed
	assert.False(fileExists(fs, "/tmp/00001.png"))
	assert.False(fileExists(fs, "/photos/a1/p1/00001.jpg.part"))

	blob, err := afero.ReadFile(fs, "/photos/a1/p1/00001.jpg")
	assert.NoError(err)
	img, err := jpeg.Decode(bytes.NewReader(blob))
	assert.NoError(err)
	assert.Equal(image.Rect(0, 0, 8, 4), img.Bounds())
}

// strictCreateFs refuses Create when the parent directory is missing,
// the way a real disk does and MemMapFs does not.
type strictCreateFs struct {
	afero.Fs
}

func (f strictCreateFs) Create(name string) (afero.File, error) {
	exist, err := afero.DirExists(f.Fs, filepath.Dir(name))
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, &os.PathError{Op: "create", Path: name, Err: os.ErrNotExist}
	}
	return f.Fs.Create(name)
}

func TestNormalizeCreatesTargetDir(t *testing.T) {
	assert := require.New(t)
	fs := strictCreateFs{afero.NewMemMapFs()}
	s, err := NewJpegImageNormalizerAdapter(slog.Default(), fs)
	assert.NoError(err)

	assert.NoError(fs.MkdirAll("/tmp", 0755))
	assert.NoError(afero.WriteFile(fs, "/tmp/00001.png", pngBlob(t), 0644))
	assert.NoError(s.Normalize("/tmp/00001.png", "/photos/a9/p9/00001.jpg"))
	assert.True(fileExists(fs, "/photos/a9/p9/00001.jpg"))
}

func TestNormalizeSamePathIsNoop(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()
	s, err := NewJpegImageNormalizerAdapter(slog.Default(), fs)
	assert.NoError(err)

	path := "/photos/a1/cover.jpg"
	assert.NoError(afero.WriteFile(fs, path, []byte("already canonical"), 0644))
	assert.NoError(s.Normalize(path, path))

	blob, err := afero.ReadFile(fs, path)
	assert.NoError(err)
	assert.Equal([]byte("already canonical"), blob)
}

func TestNormalizeBadInput(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()
	s, err := NewJpegImageNormalizerAdapter(slog.Default(), fs)
	assert.NoError(err)

	assert.NoError(afero.WriteFile(fs, "/tmp/broken.png", []byte("not an image"), 0644))
	err = s.Normalize("/tmp/broken.png", "/photos/a1/p1/00001.jpg")
	assert.ErrorIs(err, errors.ErrFormatConversion)

	// bad source is consumed too and no target appears
	assert.False(fileExists(fs, "/tmp/broken.png"))
	assert.False(fileExists(fs, "/photos/a1/p1/00001.jpg"))
}

func fileExists(fs afero.Fs, path string) bool {
	exist, _ := afero.Exists(fs, path)
	return exist
}
