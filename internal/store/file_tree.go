package store

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultFolderName   = "Default"
	resourcesFolderName = "resources"
	redirectExtension   = ".redirect"
)

// dirIndex is a case-insensitive view over the entries of one directory.
// Names differing only in case resolve to the first of them in directory
// order, whatever the case of the lookup.
type dirIndex struct {
	path    string
	entries []fs.DirEntry
	folded  map[string]fs.DirEntry
}

func readDirIndex(path string) (*dirIndex, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	idx := &dirIndex{
		path:    path,
		entries: entries,
		folded:  make(map[string]fs.DirEntry, len(entries)),
	}
	for _, e := range entries {
		key := strings.ToLower(e.Name())
		if _, ok := idx.folded[key]; !ok {
			idx.folded[key] = e
		}
	}
	return idx, nil
}

func (d *dirIndex) find(name string) (fs.DirEntry, bool) {
	e, ok := d.folded[strings.ToLower(name)]
	return e, ok
}

func (d *dirIndex) findDir(name string) (string, bool) {
	e, ok := d.find(name)
	if !ok || !isDir(d.path, e) {
		return "", false
	}
	return filepath.Join(d.path, e.Name()), true
}

func (d *dirIndex) findFile(name string) (string, bool) {
	e, ok := d.find(name)
	if !ok || isDir(d.path, e) {
		return "", false
	}
	return filepath.Join(d.path, e.Name()), true
}

// isDir follows symlinks, so linked application folders behave like real ones.
func isDir(parent string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := os.Stat(filepath.Join(parent, e.Name()))
	return err == nil && info.IsDir()
}

// trimExtension cuts ext from name without regard to case.
func trimExtension(name, ext string) (string, bool) {
	if len(name) <= len(ext) || !strings.EqualFold(name[len(name)-len(ext):], ext) {
		return "", false
	}
	return name[:len(name)-len(ext)], true
}

// readRedirect parses a redirect record: a single non-empty line naming the
// target directory, absolute or relative to root.
func readRedirect(root, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	var target string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if line == "" {
			continue
		}
		if target != "" {
			return "", fmt.Errorf("%w: %s holds more than one target", ErrMalformedRedirect, path)
		}
		target = line
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	if target == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrMalformedRedirect, path)
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}
	return filepath.Clean(target), nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
