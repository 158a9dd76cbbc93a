package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"
)

// mergeFS implements fs.FS
type mergeFS struct {
	// A cache for minimizing ascertaining which directory holds the template.
	cache map[string]fs.FS

	// Current working directory, or, embedded filesystem
	userDir fs.FS

	// Package-level directory embedding tmpl/
	pkgDir fs.FS

	mu sync.RWMutex
}

func newMergeFS(userDir, pkgDir fs.FS) *mergeFS {
	return &mergeFS{cache: make(map[string]fs.FS), userDir: userDir, pkgDir: pkgDir}
}

// Open opens the file matching the name using the following strategy:
// - check the cache
// - check the user filesystem
// - check the package-level virtual filesystem
//
// Whenever a file is found and is not present in the cache, it is added.
// Nothing removes references from the cache.
//
// If a file is removed from the user filesystem during runtime,
// then a reference to it from the cache returns the same error (fs.ErrNotExist)
// as if the cache did not have that reference.
func (mfs *mergeFS) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	dir, ok := mfs.cache[name]
	mfs.mu.RUnlock()
	if ok {
		return dir.Open(name)
	}

	file, err := mfs.userDir.Open(name)
	if err == nil {
		mfs.remember(name, mfs.userDir)
		return file, nil
	}

	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		file, err = mfs.pkgDir.Open(name)
		if err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}

		mfs.remember(name, mfs.pkgDir)
		return file, nil
	}

	return nil, fmt.Errorf("unable to open template: %w", err)
}

func (mfs *mergeFS) remember(name string, dir fs.FS) {
	mfs.mu.Lock()
	mfs.cache[name] = dir
	mfs.mu.Unlock()
}

//go:embed tmpl/*
var pkgFS embed.FS
