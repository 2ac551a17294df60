// Package archive gives access to documents packed into zip archives.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

// WalkFunc is called for every file entry visited by Walk. The archive
// argument is the path passed to Walk. If an error is returned, processing
// stops.
type WalkFunc func(archive string, file *zip.File) error

// SkipAll returned by WalkFunc stops the walk without error.
var SkipAll = errors.New("skip remaining entries")

// Walk visits all file entries in the archive which names start with prefix.
// Archives with absolute or ".." entries are refused as a whole.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			if errors.Is(err, SkipAll) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Read calls fn with content of the single entry called name.
func Read(archive, name string, fn func(r io.Reader) error) error {
	found := false
	err := Walk(archive, name, func(_ string, f *zip.File) error {
		if f.Name != name {
			return nil
		}
		found = true
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		if err := fn(rc); err != nil {
			return err
		}
		return SkipAll
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s in %s: %w", name, archive, fs.ErrNotExist)
	}
	return nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
