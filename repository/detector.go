package repository

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// ModelFileName is the name of the source model file written at a toolkit root
	ModelFileName = ".sourceModel.xml"
	// InfoFileName is the toolkit description file
	InfoFileName = "info.xml"
	// IndexFileName is the toolkit index file
	IndexFileName = "toolkit.xml"
)

// Detector identifies toolkit root folders
type Detector struct {
	markers []string
}

// NewDetector creates a new toolkit detector instance, markers default to info.xml, toolkit.xml and .sourceModel.xml
func NewDetector(markers ...string) *Detector {
	if len(markers) == 0 {
		markers = []string{
			InfoFileName,  // toolkit description
			IndexFileName, // indexed toolkit
			ModelFileName, // previously generated model
		}
	}
	return &Detector{markers: markers}
}

// Detect identifies the toolkit root for the given file path
func (d *Detector) Detect(filePath string) (*Toolkit, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	// a directory is searched from itself, a file from its parent
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, marker := d.findToolkitRoot(startDir)
	if rootPath == "" {
		rootPath = startDir
	}
	ret := &Toolkit{RootPath: rootPath, Marker: marker, RootDirCount: rootDirCount(rootPath)}
	relPath, err := filepath.Rel(rootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	if relPath != "." {
		ret.RelativePath = filepath.ToSlash(relPath)
	}
	return ret, nil
}

// findToolkitRoot searches up from the start directory for toolkit markers
func (d *Detector) findToolkitRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, marker
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ""
		}
		dir = parent
	}
}

func rootDirCount(rootPath string) int {
	slashed := filepath.ToSlash(rootPath)
	count := 0
	if strings.HasPrefix(slashed, "/") {
		count++
	}
	for _, part := range strings.Split(slashed, "/") {
		if part != "" {
			count++
		}
	}
	return count
}
