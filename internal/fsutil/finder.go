// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// FindFilesByExtension recursively searches rootPath for files ending with
// extension, in lexical order. Hidden directories (".git", ".cache", ...)
// below rootPath are not entered.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		return nil, errors.New("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != rootPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
