package core

import "github.com/brettbedarf/fsgraph"

// originIterator yields root once. Ranging it again yields nothing.
func originIterator(root fsgraph.DirectoryVertex) fsgraph.VertexIterator {
	produced := false
	return func(yield func(fsgraph.Vertex) bool) {
		if produced {
			return
		}
		produced = true
		yield(root)
	}
}
