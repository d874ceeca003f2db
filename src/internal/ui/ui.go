// Package ui serves a prebuilt admin frontend from a directory on disk.
package ui

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/shopworks/storefront-admin/src/internal/utils"
)

// safeFileSystem wraps a directory and refuses paths that resolve outside it.
type safeFileSystem struct {
	root string
}

// Open implements http.FileSystem with path traversal protection.
func (fs safeFileSystem) Open(name string) (http.File, error) {
	cleanPath := path.Clean("/" + name)
	fullPath := filepath.Join(fs.root, filepath.FromSlash(cleanPath))

	absRoot, err := filepath.Abs(fs.root)
	if err != nil {
		return nil, err
	}
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) && absPath != absRoot {
		return nil, os.ErrNotExist
	}

	return os.Open(absPath)
}

// NewSafeFileSystem creates a file system rooted at root.
func NewSafeFileSystem(root string) http.FileSystem {
	return safeFileSystem{root: root}
}

// Handler serves files under root. Paths without a file fall back to
// index.html so client-side routes survive a reload.
func Handler(root string) http.Handler {
	fsys := NewSafeFileSystem(root)
	files := http.FileServer(fsys)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		f, err := fsys.Open(r.URL.Path)
		if err != nil {
			r2 := r.Clone(r.Context())
			r2.URL.Path = "/"
			files.ServeHTTP(w, r2)
			return
		}
		utils.CloseOrWarn(f)

		files.ServeHTTP(w, r)
	})
}
