package library

import (
	"os"
	"path/filepath"
)

// ResolveFunc maps a track name to a playable location.
type ResolveFunc func(name string) (string, bool)

// DirResolver looks names up as files under a list of root directories.
// Earlier roots win. Absolute names are accepted as-is when the file exists.
type DirResolver struct {
	Roots []string
}

// Resolve returns the first existing regular file called name under a root.
func (d DirResolver) Resolve(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if filepath.IsAbs(name) {
		return name, isRegular(name)
	}
	clean := filepath.Clean(name)
	if !filepath.IsLocal(clean) {
		return "", false
	}
	for _, root := range d.Roots {
		path := filepath.Join(root, clean)
		if isRegular(path) {
			return path, true
		}
	}
	return "", false
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Chain tries each resolver in order and returns the first hit.
func Chain(resolvers ...ResolveFunc) ResolveFunc {
	return func(name string) (string, bool) {
		for _, r := range resolvers {
			if r == nil {
				continue
			}
			if loc, ok := r(name); ok {
				return loc, true
			}
		}
		return "", false
	}
}
