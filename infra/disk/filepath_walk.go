package disk

import (
	"io/fs"

	"github.com/cloudlagoon/lagoon/ports"
	"github.com/spf13/afero"
)

type FilepathWalk struct {
	fs ports.FS
}

func NewFilepathWalk(f ports.FS) FilepathWalk {
	return FilepathWalk{f}
}

// Walk visits every entry under root until fn returns false or error.
// A missing root is not an error - the cache starts empty.
func (f *FilepathWalk) Walk(root string, fn func(name string, err error) (bool, error)) error {
	if exist, _ := afero.DirExists(f.fs, root); !exist {
		return nil
	}
	err := afero.Walk(f.fs, root, func(path string, info fs.FileInfo, err error) error {
		ok, err := fn(path, err)
		if !ok {
			return fs.SkipAll
		}
		return err
	})
	return err
}
