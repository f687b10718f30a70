// Package dirfs abstracts opening directories for incremental reads so tests can
// substitute entries whose metadata cannot be read.
package dirfs

import (
	"io/fs"
	"os"
	"syscall"
)

// DirHandle is an open directory read in batches.
// *os.File satisfies it.
type DirHandle interface {
	// ReadDir returns at most n entries; io.EOF once the directory is exhausted
	ReadDir(n int) ([]fs.DirEntry, error)
	Close() error
}

// DirOpener opens directories on some filesystem
type DirOpener interface {
	OpenDir(path string) (DirHandle, error)
}

// OSDirOpener implements DirOpener using the local OS filesystem.
type OSDirOpener struct{}

// OpenDir opens path and fails with ENOTDIR when it is not a directory
func (OSDirOpener) OpenDir(path string) (DirHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close() // nolint:errcheck
		return nil, err
	}
	if !info.IsDir() {
		f.Close() // nolint:errcheck
		return nil, &fs.PathError{Op: "opendir", Path: path, Err: syscall.ENOTDIR}
	}
	return f, nil
}
