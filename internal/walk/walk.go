// Package walk drives an [fsgraph.Adapter] the way a query interpreter would:
// start at the origin, follow a path of edges, filter on properties of the
// reached vertices, and project the requested properties into result rows.
package walk

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/brettbedarf/fsgraph"
	"github.com/brettbedarf/fsgraph/internal/util"
)

// ErrInvalidQuery is returned for queries that do not fit the graph schema
var ErrInvalidQuery = errors.New("invalid query")

// Row is a vertex reached by the traversal, linked to the row it was reached from
type Row struct {
	vertex fsgraph.Vertex
	parent *Row
}

// ActiveVertex implements fsgraph.DataContext
func (r *Row) ActiveVertex() (fsgraph.Vertex, bool) {
	return r.vertex, r.vertex != nil
}

// Parent returns the row this one was reached from, nil for the origin
func (r *Row) Parent() *Row {
	return r.parent
}

// Filter keeps rows whose Property equals Value. Null never matches.
type Filter struct {
	Property string
	Value    string
}

// ParseFilter parses "property=value"
func ParseFilter(s string) (Filter, error) {
	prop, value, ok := strings.Cut(s, "=")
	if !ok || prop == "" {
		return Filter{}, fmt.Errorf("%w: filter %q must look like property=value", ErrInvalidQuery, s)
	}
	return Filter{Property: prop, Value: value}, nil
}

// Query is a linear traversal starting at OriginDirectory
type Query struct {
	Edges      []string // followed in order after OriginDirectory
	Filters    []Filter // applied to the final vertices
	Properties []string // projected from the final vertices; empty means all declared
	Limit      int      // maximum rows; 0 means unlimited
}

// Result maps property name to value for one row
type Result map[string]fsgraph.FieldValue

// TargetType checks the edge path against the schema and returns the type of
// the vertices it ends on
func (q Query) TargetType() (string, error) {
	typeName := fsgraph.DirectoryType
	for _, name := range q.Edges {
		edge, ok := fsgraph.LookupEdge(name)
		if !ok {
			return "", fmt.Errorf("%w: unknown edge %q", ErrInvalidQuery, name)
		}
		if edge.From != typeName {
			return "", fmt.Errorf("%w: edge %q starts at %s, not %s", ErrInvalidQuery, name, edge.From, typeName)
		}
		typeName = edge.To
	}
	return typeName, nil
}

func (q Query) validate() (typeName string, props []string, err error) {
	typeName, err = q.TargetType()
	if err != nil {
		return "", nil, err
	}
	if q.Limit < 0 {
		return "", nil, fmt.Errorf("%w: negative limit %d", ErrInvalidQuery, q.Limit)
	}
	props = q.Properties
	if len(props) == 0 {
		props = fsgraph.Properties(typeName)
	}
	for _, p := range props {
		if !fsgraph.HasProperty(typeName, p) {
			return "", nil, fmt.Errorf("%w: %s has no property %q", ErrInvalidQuery, typeName, p)
		}
	}
	for _, f := range q.Filters {
		if !fsgraph.HasProperty(typeName, f.Property) {
			return "", nil, fmt.Errorf("%w: cannot filter %s on %q", ErrInvalidQuery, typeName, f.Property)
		}
	}
	return typeName, props, nil
}

// Run executes q against a. Requests reaching the adapter are always within
// its schema; an invalid query is rejected before any directory is opened.
func Run(a fsgraph.Adapter, q Query) ([]Result, error) {
	logger := util.GetLogger("walk")

	typeName, props, err := q.validate()
	if err != nil {
		return nil, err
	}

	rows := Rows(a, q.Edges)
	for _, f := range q.Filters {
		rows = filter(a, rows, typeName, f)
	}

	var matched []*Row
	for r := range rows {
		matched = append(matched, r)
		if q.Limit > 0 && len(matched) == q.Limit {
			break
		}
	}
	logger.Debug().Strs("edges", q.Edges).Int("rows", len(matched)).Msg("Traversal complete")

	results := make([]Result, len(matched))
	for i := range results {
		results[i] = make(Result, len(props))
	}
	for _, p := range props {
		i := 0
		for _, value := range a.ResolveProperty(contexts(slices.Values(matched)), typeName, p) {
			results[i][p] = value
			i++
		}
	}
	return results, nil
}

// Rows lazily follows edges from the origin. The edge path must already be
// valid; see [Query.TargetType].
func Rows(a fsgraph.Adapter, edges []string) iter.Seq[*Row] {
	rows := func(yield func(*Row) bool) {
		for v := range a.ResolveStartingVertices(fsgraph.OriginDirectoryEdge, nil) {
			if !yield(&Row{vertex: v}) {
				return
			}
		}
	}
	typeName := fsgraph.DirectoryType
	for _, name := range edges {
		rows = expand(a, rows, typeName, name)
		edge, _ := fsgraph.LookupEdge(name)
		typeName = edge.To
	}
	return rows
}

func expand(a fsgraph.Adapter, rows iter.Seq[*Row], typeName, edgeName string) iter.Seq[*Row] {
	return func(yield func(*Row) bool) {
		for ctx, neighbors := range a.ResolveNeighbors(contexts(rows), typeName, edgeName, nil) {
			parent := ctx.(*Row)
			for v := range neighbors {
				if !yield(&Row{vertex: v, parent: parent}) {
					return
				}
			}
		}
	}
}

func filter(a fsgraph.Adapter, rows iter.Seq[*Row], typeName string, f Filter) iter.Seq[*Row] {
	return func(yield func(*Row) bool) {
		for ctx, value := range a.ResolveProperty(contexts(rows), typeName, f.Property) {
			if s, ok := value.AsString(); !ok || s != f.Value {
				continue
			}
			if !yield(ctx.(*Row)) {
				return
			}
		}
	}
}

func contexts(rows iter.Seq[*Row]) fsgraph.ContextIterator {
	return func(yield func(fsgraph.DataContext) bool) {
		for r := range rows {
			if !yield(r) {
				return
			}
		}
	}
}
