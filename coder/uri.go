package coder

import (
	"path"
	"path/filepath"
	"strings"
)

// RootDirCount returns the number of path components of a toolkit directory, "." counts none
func RootDirCount(toolkitDir string) int {
	cleaned := path.Clean(filepath.ToSlash(toolkitDir))
	if cleaned == "." {
		return 0
	}
	return len(components(cleaned))
}

// RelativeURI strips the first rootDirCount path components of filePath
func RelativeURI(filePath string, rootDirCount int) string {
	parts := components(path.Clean(filepath.ToSlash(filePath)))
	if rootDirCount >= len(parts) {
		return ""
	}
	return strings.Join(parts[rootDirCount:], "/")
}

func components(cleaned string) []string {
	var ret []string
	if strings.HasPrefix(cleaned, "/") {
		ret = append(ret, "/")
	}
	for _, part := range strings.Split(cleaned, "/") {
		if part != "" {
			ret = append(ret, part)
		}
	}
	return ret
}
