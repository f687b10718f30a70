package core

import (
	"github.com/brettbedarf/fsgraph"
)

// neighborFunc builds the neighbor sequence of one active vertex
type neighborFunc func(v fsgraph.Vertex) fsgraph.VertexIterator

func emptyVertices(func(fsgraph.Vertex) bool) {}

// resolveNeighbors pairs every context with its neighbors, one pair per
// context and in input order. A context without an active vertex gets an empty
// sequence. Neighbor sequences are built as their pair is produced and are
// never pulled here.
func resolveNeighbors(contexts fsgraph.ContextIterator, neighbors neighborFunc) fsgraph.NeighborIterator {
	return func(yield func(fsgraph.DataContext, fsgraph.VertexIterator) bool) {
		for ctx := range contexts {
			var seq fsgraph.VertexIterator = emptyVertices
			if v, ok := ctx.ActiveVertex(); ok {
				seq = neighbors(v)
			}
			if !yield(ctx, seq) {
				return
			}
		}
	}
}

// fromDirectory adapts a directory scan constructor to a neighborFunc. The
// active vertex must be a Directory.
func fromDirectory(open func(fsgraph.DirectoryVertex) *dirScan) neighborFunc {
	return func(v fsgraph.Vertex) fsgraph.VertexIterator {
		dir, ok := v.(fsgraph.DirectoryVertex)
		if !ok {
			panic(mismatch(fsgraph.DirectoryType, v))
		}
		return open(dir).all
	}
}
