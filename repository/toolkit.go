package repository

import "github.com/viant/afs/url"

// Toolkit represents information about a detected SPL toolkit
type Toolkit struct {
	RootPath     string // Absolute path to the toolkit root directory
	Marker       string // Marker file that identified the root
	RelativePath string // Path from toolkit root to the specified file, usable as a source file uri
	RootDirCount int    // Number of path components of RootPath
}

// ModelURL returns the location of the toolkit source model file
func (t *Toolkit) ModelURL(fileName string) string {
	return url.Join(t.RootPath, fileName)
}
