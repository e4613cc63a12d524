package adapters

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cloudlagoon/lagoon/lib"
	"github.com/cloudlagoon/lagoon/ports"
	"github.com/spf13/afero"
)

type BasicMediaStorageAdapter struct {
	log ports.Logger
	fs  ports.FS
}

func NewBasicMediaStorageAdapter(log ports.Logger, f ports.FS) (*BasicMediaStorageAdapter, error) {
	log = log.With(slog.String("entity", "BasicMediaStorageAdapter"))
	s := &BasicMediaStorageAdapter{
		log: log,
		fs:  f,
	}

	return s, nil
}

func (s *BasicMediaStorageAdapter) Exists(path string) bool {
	lib.Assert(path != "")
	exist, _ := afero.Exists(s.fs, path)
	if !exist {
		return false
	}
	// directories never count as cached media
	isDir, _ := afero.IsDir(s.fs, path)
	return !isDir
}

func (s *BasicMediaStorageAdapter) Remove(path string) (bool, error) {
	lib.Assert(path != "")
	if !s.Exists(path) {
		return false, nil
	}
	if err := s.fs.Remove(path); err != nil {
		return false, err
	}
	s.log.Info("removed", slog.String("path", path))
	return true, nil
}

func (s *BasicMediaStorageAdapter) ListBySuffix(dir, suffix string) ([]string, error) {
	lib.Assert(dir != "")
	exist, _ := afero.DirExists(s.fs, dir)
	if !exist {
		return nil, nil
	}
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, err
	}
	paths := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if suffix != "" && !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *BasicMediaStorageAdapter) WriteFile(path string, data []byte) error {
	lib.Assert(path != "")
	if err := s.fs.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, path, data, 0644)
}

// WriteFileAtomic writes data next to path and renames it in place,
// so readers never observe a partial file.
func (s *BasicMediaStorageAdapter) WriteFileAtomic(path string, data []byte) error {
	lib.Assert(path != "")
	tmp := path + ".part"
	if err := s.WriteFile(tmp, data); err != nil {
		return err
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}
	return nil
}

func (s *BasicMediaStorageAdapter) Open(path string) (ports.File, error) {
	return s.fs.Open(path)
}
