package core

import (
	"fmt"

	"github.com/brettbedarf/fsgraph"
	"github.com/brettbedarf/fsgraph/config"
	"github.com/brettbedarf/fsgraph/internal/dirfs"
	"github.com/brettbedarf/fsgraph/internal/util"
)

var _ fsgraph.Adapter = (*Adapter)(nil)

type edgeKey struct {
	typeName string
	edgeName string
}

// Adapter answers interpreter requests over the directory tree rooted at the
// configured origin. Nothing is cached between calls; every edge request
// opens fresh directory scans.
//
// Requests outside the declared schema are contract violations and panic with
// an error wrapping one of the fsgraph sentinel errors.
type Adapter struct {
	origin   string              // immutable for the adapter's lifetime
	excluded map[string]struct{} // subdirectory names never yielded
	batch    int
	opener   dirfs.DirOpener
	handles  *handleRegistry
	edges    map[edgeKey]neighborFunc
	logger   util.Logger
}

// NewAdapter creates an Adapter reading the local filesystem
func NewAdapter(cfg *config.Config) *Adapter {
	return NewAdapterWithOpener(cfg, dirfs.OSDirOpener{})
}

// NewAdapterWithOpener creates an Adapter reading directories through opener
func NewAdapterWithOpener(cfg *config.Config, opener dirfs.DirOpener) *Adapter {
	batch := cfg.ScanBatchSize
	if batch < 1 {
		batch = config.DefaultScanBatchSize
	}
	a := &Adapter{
		origin:   cfg.Origin,
		excluded: util.Set(cfg.ExcludedDirs),
		batch:    batch,
		opener:   opener,
		handles:  newHandleRegistry(),
		logger:   util.GetLogger("adapter"),
	}
	a.edges = map[edgeKey]neighborFunc{
		{fsgraph.DirectoryType, fsgraph.ContainsFileEdge}: fromDirectory(a.scanFiles),
		{fsgraph.DirectoryType, fsgraph.SubdirectoryEdge}: fromDirectory(a.scanSubdirectories),
	}
	a.logger.Debug().Str("origin", a.origin).Strs("excluded", cfg.ExcludedDirs).Msg("Adapter created")
	return a
}

// Origin returns the root directory the graph is built over
func (a *Adapter) Origin() string {
	return a.origin
}

// OpenScans returns the number of directory handles currently held by scans
// that have been neither exhausted, abandoned, nor garbage collected
func (a *Adapter) OpenScans() int {
	return a.handles.Len()
}

// ResolveStartingVertices yields the origin directory. OriginDirectory with no
// parameters is the only entry edge.
func (a *Adapter) ResolveStartingVertices(edgeName string, params fsgraph.EdgeParameters) fsgraph.VertexIterator {
	if edgeName != fsgraph.OriginDirectoryEdge {
		panic(fmt.Errorf("%w: starting edge %q", fsgraph.ErrUnknownEdge, edgeName))
	}
	if !params.IsEmpty() {
		panic(fmt.Errorf("%w: %s takes no parameters, got %d", fsgraph.ErrUnexpectedParameters, edgeName, len(params)))
	}
	return originIterator(fsgraph.OriginVertex())
}

// ResolveProperty pairs each context with propertyName of its active vertex,
// or Null when the context has none.
func (a *Adapter) ResolveProperty(contexts fsgraph.ContextIterator, typeName, propertyName string) fsgraph.PropertyIterator {
	get := lookupProperty(typeName, propertyName)
	return func(yield func(fsgraph.DataContext, fsgraph.FieldValue) bool) {
		for ctx := range contexts {
			value := fsgraph.Null
			if v, ok := ctx.ActiveVertex(); ok {
				value = get(v)
			}
			if !yield(ctx, value) {
				return
			}
		}
	}
}

// ResolveNeighbors pairs each context with the vertices across edgeName.
// Both supported edges ignore params.
func (a *Adapter) ResolveNeighbors(contexts fsgraph.ContextIterator, typeName, edgeName string, params fsgraph.EdgeParameters) fsgraph.NeighborIterator {
	neighbors, ok := a.edges[edgeKey{typeName, edgeName}]
	if !ok {
		panic(fmt.Errorf("%w: edge %q on type %q", fsgraph.ErrUnimplemented, edgeName, typeName))
	}
	return resolveNeighbors(contexts, neighbors)
}

// ResolveCoercion is not supported: Directory and File share no supertype in
// this schema.
func (a *Adapter) ResolveCoercion(contexts fsgraph.ContextIterator, typeName, coerceToType string) fsgraph.CoercionIterator {
	panic(fmt.Errorf("%w: coercion from %q to %q", fsgraph.ErrUnimplemented, typeName, coerceToType))
}
