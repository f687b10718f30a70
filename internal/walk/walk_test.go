package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brettbedarf/fsgraph"
	"github.com/brettbedarf/fsgraph/adapter"
	"github.com/brettbedarf/fsgraph/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTree lays out:
//
//	a/x.txt
//	a/nested/deep.md
//	b
//	.git/HEAD
//	target/out.bin
func newTree(t *testing.T) *adapter.Adapter {
	t.Helper()
	root := t.TempDir()
	for _, p := range []string{"a/x.txt", "a/nested/deep.md", "b", ".git/HEAD", "target/out.bin"} {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(p), 0o644))
	}
	cfg := config.NewDefaultConfig()
	cfg.Origin = root
	a, err := adapter.New(cfg)
	require.NoError(t, err)
	return a
}

func TestRun_SubdirectoryThenFiles(t *testing.T) {
	t.Parallel()

	a := newTree(t)

	results, err := Run(a, Query{Edges: []string{fsgraph.SubdirectoryEdge, fsgraph.ContainsFileEdge}})

	require.NoError(t, err)
	assert.Equal(t, []Result{{
		"name":       fsgraph.String("x.txt"),
		"path":       fsgraph.String("a/x.txt"),
		"extension":  fsgraph.String("txt"),
		"__typename": fsgraph.String("File"),
	}}, results)
	assert.Zero(t, a.OpenScans())
}

func TestRun_OriginFiles(t *testing.T) {
	t.Parallel()

	a := newTree(t)

	results, err := Run(a, Query{Edges: []string{fsgraph.ContainsFileEdge}})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, fsgraph.String("b"), results[0]["name"])
	assert.Equal(t, fsgraph.String("b"), results[0]["path"])
	assert.True(t, results[0]["extension"].IsNull())
}

func TestRun_OriginOnly(t *testing.T) {
	t.Parallel()

	a := newTree(t)

	results, err := Run(a, Query{Properties: []string{"name", "path"}})

	require.NoError(t, err)
	assert.Equal(t, []Result{{"name": fsgraph.String("<origin>"), "path": fsgraph.String("")}}, results)
}

func TestRun_TwoLevelsOfSubdirectories(t *testing.T) {
	t.Parallel()

	a := newTree(t)

	results, err := Run(a, Query{
		Edges:      []string{fsgraph.SubdirectoryEdge, fsgraph.SubdirectoryEdge, fsgraph.ContainsFileEdge},
		Properties: []string{"path"},
	})

	require.NoError(t, err)
	assert.Equal(t, []Result{{"path": fsgraph.String("a/nested/deep.md")}}, results)
}

func TestRun_Filter(t *testing.T) {
	t.Parallel()

	a := newTree(t)

	results, err := Run(a, Query{
		Edges:      []string{fsgraph.SubdirectoryEdge},
		Filters:    []Filter{{Property: "name", Value: "a"}},
		Properties: []string{"path"},
	})
	require.NoError(t, err)
	assert.Equal(t, []Result{{"path": fsgraph.String("a")}}, results)

	results, err = Run(a, Query{
		Edges:   []string{fsgraph.ContainsFileEdge},
		Filters: []Filter{{Property: "extension", Value: ""}},
	})
	require.NoError(t, err)
	assert.Empty(t, results, "null extension must not match an empty filter value")
}

func TestRun_LimitAbandonsScans(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, name := range []string{"1", "2", "3", "4"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), nil, 0o644))
	}
	cfg := config.NewDefaultConfig()
	cfg.Origin = root
	a, err := adapter.New(cfg)
	require.NoError(t, err)

	results, err := Run(a, Query{Edges: []string{fsgraph.ContainsFileEdge}, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Zero(t, a.OpenScans())
}

func TestRun_InvalidQueries(t *testing.T) {
	t.Parallel()

	a := newTree(t)

	tests := []struct {
		name  string
		query Query
	}{
		{"unknown edge", Query{Edges: []string{"out_Directory_Parent"}}},
		{"edge from file", Query{Edges: []string{fsgraph.ContainsFileEdge, fsgraph.ContainsFileEdge}}},
		{"unknown property", Query{Properties: []string{"size"}}},
		{"extension on directory", Query{Properties: []string{"extension"}}},
		{"bad filter", Query{Filters: []Filter{{Property: "size", Value: "1"}}}},
		{"negative limit", Query{Limit: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(a, tt.query)
			assert.ErrorIs(t, err, ErrInvalidQuery)
		})
	}
	assert.Zero(t, a.OpenScans())
}

func TestRows_ParentLinks(t *testing.T) {
	t.Parallel()

	a := newTree(t)

	var paths [][]string
	for r := range Rows(a, []string{fsgraph.SubdirectoryEdge, fsgraph.ContainsFileEdge}) {
		var chain []string
		for cur := r; cur != nil; cur = cur.Parent() {
			v, ok := cur.ActiveVertex()
			require.True(t, ok)
			switch x := v.(type) {
			case fsgraph.DirectoryVertex:
				chain = append(chain, x.Name)
			case fsgraph.FileVertex:
				chain = append(chain, x.Name)
			}
		}
		paths = append(paths, chain)
	}

	assert.Equal(t, [][]string{{"x.txt", "a", "<origin>"}}, paths)
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	f, err := ParseFilter("extension=go")
	require.NoError(t, err)
	assert.Equal(t, Filter{Property: "extension", Value: "go"}, f)

	f, err = ParseFilter("name=a=b")
	require.NoError(t, err)
	assert.Equal(t, Filter{Property: "name", Value: "a=b"}, f)

	_, err = ParseFilter("name")
	assert.ErrorIs(t, err, ErrInvalidQuery)
	_, err = ParseFilter("=x")
	assert.ErrorIs(t, err, ErrInvalidQuery)
}
