package fsgraph

import "iter"

// DataContext is one in-flight row of a query as seen by an adapter
type DataContext interface {
	// ActiveVertex returns the row's current vertex. ok is false when an
	// earlier stage of the query already discarded the row's subject.
	ActiveVertex() (v Vertex, ok bool)
}

// Sequences exchanged with the interpreter. All of them are pull-driven and
// single-use.
type (
	VertexIterator   = iter.Seq[Vertex]
	ContextIterator  = iter.Seq[DataContext]
	PropertyIterator = iter.Seq2[DataContext, FieldValue]
	NeighborIterator = iter.Seq2[DataContext, VertexIterator]
	CoercionIterator = iter.Seq2[DataContext, bool]
)

// Adapter resolves graph requests issued by a query interpreter.
//
// Outputs of the per-context operations carry exactly one pair per input
// context, in input order.
type Adapter interface {
	// ResolveStartingVertices returns the vertices an entry edge points at
	ResolveStartingVertices(edgeName string, params EdgeParameters) VertexIterator

	// ResolveProperty pairs each context with a property of its active vertex
	ResolveProperty(contexts ContextIterator, typeName, propertyName string) PropertyIterator

	// ResolveNeighbors pairs each context with the vertices reachable across edgeName
	ResolveNeighbors(contexts ContextIterator, typeName, edgeName string, params EdgeParameters) NeighborIterator

	// ResolveCoercion pairs each context with whether its active vertex is of coerceToType
	ResolveCoercion(contexts ContextIterator, typeName, coerceToType string) CoercionIterator
}
