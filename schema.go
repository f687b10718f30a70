package fsgraph

// Vertex type names
const (
	DirectoryType = "Directory"
	FileType      = "File"
)

// Edge names
const (
	OriginDirectoryEdge = "OriginDirectory"
	ContainsFileEdge    = "out_Directory_ContainsFile"
	SubdirectoryEdge    = "out_Directory_Subdirectory"
)

// Property names
const (
	TypenameProperty  = "__typename"
	NameProperty      = "name"
	PathProperty      = "path"
	ExtensionProperty = "extension"
)

// EdgeInfo describes an edge between two vertex types
type EdgeInfo struct {
	From string
	To   string
}

var edges = map[string]EdgeInfo{
	ContainsFileEdge: {From: DirectoryType, To: FileType},
	SubdirectoryEdge: {From: DirectoryType, To: DirectoryType},
}

var properties = map[string][]string{
	DirectoryType: {NameProperty, PathProperty, TypenameProperty},
	FileType:      {NameProperty, PathProperty, ExtensionProperty, TypenameProperty},
}

// LookupEdge returns the endpoints of a declared edge.
// The OriginDirectory entry edge is not included.
func LookupEdge(name string) (EdgeInfo, bool) {
	e, ok := edges[name]
	return e, ok
}

// Properties returns the properties declared on typeName, or nil for an unknown type
func Properties(typeName string) []string {
	return append([]string(nil), properties[typeName]...)
}

// HasProperty reports whether typeName declares prop
func HasProperty(typeName, prop string) bool {
	for _, p := range properties[typeName] {
		if p == prop {
			return true
		}
	}
	return false
}
