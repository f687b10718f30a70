package core

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brettbedarf/fsgraph"
	"github.com/brettbedarf/fsgraph/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext is a minimal query row holding an optional active vertex
type testContext struct {
	id     int
	vertex fsgraph.Vertex
}

func (c testContext) ActiveVertex() (fsgraph.Vertex, bool) {
	return c.vertex, c.vertex != nil
}

// contextsOf builds a context stream; a nil vertex yields a context without an
// active vertex
func contextsOf(vertices ...fsgraph.Vertex) fsgraph.ContextIterator {
	return func(yield func(fsgraph.DataContext) bool) {
		for i, v := range vertices {
			if !yield(testContext{id: i, vertex: v}) {
				return
			}
		}
	}
}

func collect(seq fsgraph.VertexIterator) []fsgraph.Vertex {
	var out []fsgraph.Vertex
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// newTestAdapter roots an adapter at origin with default settings
func newTestAdapter(t *testing.T, origin string) *Adapter {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Origin = origin
	return NewAdapter(cfg)
}

// buildTree creates the given paths under a fresh temp dir. Paths ending in
// "/" are directories, anything else an empty file.
func buildTree(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, nil, 0o644))
	}
	return root
}

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		assert.ErrorIs(t, err, target)
	}()
	fn()
}

func dirVertex(path string) fsgraph.DirectoryVertex {
	return fsgraph.DirectoryVertex{Name: filepath.Base(path), Path: path}
}

func ext(s string) *string {
	return &s
}

// fakeInfo is an fs.FileInfo with a fixed name and mode
type fakeInfo struct {
	name string
	mode fs.FileMode
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return i.mode }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.mode.IsDir() }
func (i fakeInfo) Sys() any           { return nil }
