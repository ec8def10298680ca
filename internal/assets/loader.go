package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Handle is an opaque loaded asset: the resolved path plus raw bytes.
// Rendering concerns stay with the caller.
type Handle struct {
	Path string
	Data []byte
}

// Loader resolves a data-relative asset path (item icons) to a handle.
// Injected into the database so tests can fake it.
type Loader interface {
	Load(path string) (Handle, error)
}

type fileLoader struct {
	root string
}

// NewFileLoader returns a Loader that reads assets from under root. Paths
// that escape the root are rejected.
func NewFileLoader(root string) Loader {
	return &fileLoader{root: root}
}

func (l *fileLoader) Load(path string) (Handle, error) {
	clean := filepath.Clean(path)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return Handle{}, fmt.Errorf("asset path %q escapes asset root", path)
	}

	full := filepath.Join(l.root, clean)
	data, err := os.ReadFile(full)
	if err != nil {
		return Handle{}, fmt.Errorf("load asset %s: %w", path, err)
	}
	return Handle{Path: full, Data: data}, nil
}
