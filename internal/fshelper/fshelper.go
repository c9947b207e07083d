package fshelper

import (
	"io/fs"
	"os"

	"github.com/bstardust/photo-gps-report/pkg/common"
)

// DirFS is a directory filesystem that remembers the path it was opened from
type DirFS struct {
	fs.FS
	name string
}

// Name returns the path the filesystem was opened from
func (d *DirFS) Name() string {
	return d.name
}

// OpenDir opens path as a filesystem rooted at an existing directory. A
// missing path or a plain file is an input error the caller treats as fatal.
func OpenDir(path string) (*DirFS, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NewInputError("input directory not found: %s", path)
		}
		return nil, common.NewInputError("cannot access input directory %s: %v", path, err)
	}
	if !info.IsDir() {
		return nil, common.NewInputError("input path is not a directory: %s", path)
	}

	return &DirFS{FS: os.DirFS(path), name: path}, nil
}
