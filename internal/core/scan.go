package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/brettbedarf/fsgraph"
	"github.com/brettbedarf/fsgraph/internal/util"
)

// classifyFunc turns a directory entry into a vertex, or reports that the entry
// is not part of the scan's output
type classifyFunc func(parent fsgraph.DirectoryVertex, name string, info fs.FileInfo) (fsgraph.Vertex, bool)

// dirScan lazily lists one directory. The handle is opened when the scan is
// created; entries are read and classified only as the consumer pulls.
//
// NOTE: dirScan is single-use and not thread-safe
type dirScan struct {
	dir      fsgraph.DirectoryVertex
	handle   *scanHandle
	batch    int
	classify classifyFunc
	started  bool
	logger   util.Logger
}

// openScan opens origin/dir.Path and panics if it cannot be opened; the origin
// is assumed valid for the adapter's lifetime.
func (a *Adapter) openScan(dir fsgraph.DirectoryVertex, kind string, classify classifyFunc) *dirScan {
	fullPath := filepath.Join(a.origin, filepath.FromSlash(dir.Path))
	h, err := a.opener.OpenDir(fullPath)
	if err != nil {
		a.logger.Error().Err(err).Str("path", fullPath).Str("scan", kind).Msg("Failed to open directory")
		panic(fmt.Errorf("%w %q: %w", fsgraph.ErrScanOpen, fullPath, err))
	}

	s := &dirScan{
		dir:      dir,
		handle:   a.handles.track(fullPath, h),
		batch:    a.batch,
		classify: classify,
		logger:   a.logger.With().Str("scan", kind).Str("dir", dir.Path).Logger(),
	}
	// Scans dropped before being ranged still give their handle back
	runtime.AddCleanup(s, func(h *scanHandle) { h.release() }, s.handle)
	return s
}

// all is the scan's iter.Seq. The handle is released when the loop ends,
// whether by exhaustion or by the consumer breaking out early.
func (s *dirScan) all(yield func(fsgraph.Vertex) bool) {
	if s.started {
		return
	}
	s.started = true
	defer s.handle.release()

	for {
		entries, err := s.handle.dir.ReadDir(s.batch)
		for _, entry := range entries {
			v, ok := s.next(entry)
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.logger.Warn().Err(err).Msg("Directory read failed; ending scan early")
			}
			return
		}
		if len(entries) == 0 {
			return
		}
	}
}

func (s *dirScan) next(entry fs.DirEntry) (fsgraph.Vertex, bool) {
	name := entry.Name()
	info, err := entry.Info()
	if err != nil {
		// entries can vanish or be unreadable between listing and stat
		s.logger.Debug().Err(err).Str("name", name).Msg("Skipping entry with unreadable metadata")
		return nil, false
	}
	return s.classify(s.dir, name, info)
}

// scanFiles lists the regular files directly inside dir
func (a *Adapter) scanFiles(dir fsgraph.DirectoryVertex) *dirScan {
	return a.openScan(dir, "files", classifyFile)
}

// scanSubdirectories lists the directories directly inside dir, minus excluded names
func (a *Adapter) scanSubdirectories(dir fsgraph.DirectoryVertex) *dirScan {
	return a.openScan(dir, "subdirectories", a.classifySubdirectory)
}

func classifyFile(parent fsgraph.DirectoryVertex, name string, info fs.FileInfo) (fsgraph.Vertex, bool) {
	if !info.Mode().IsRegular() {
		return nil, false
	}
	return fsgraph.FileVertex{
		Name:      name,
		Extension: extension(name),
		Path:      joinPath(parent.Path, name),
	}, true
}

func (a *Adapter) classifySubdirectory(parent fsgraph.DirectoryVertex, name string, info fs.FileInfo) (fsgraph.Vertex, bool) {
	if !info.IsDir() {
		return nil, false
	}
	if _, excluded := a.excluded[name]; excluded {
		return nil, false
	}
	return fsgraph.DirectoryVertex{
		Name: name,
		Path: joinPath(parent.Path, name),
	}, true
}

// extension returns the text after the last '.' of name. Names without a '.'
// and dotfiles whose only '.' is the leading one have no extension; "a." has
// an empty one.
func extension(name string) *string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return nil
	}
	ext := name[i+1:]
	return &ext
}

// joinPath appends name to a root-relative path without normalizing either
func joinPath(parent, name string) string {
	if parent == "" {
		// relative from root
		return name
	}
	return parent + "/" + name
}
