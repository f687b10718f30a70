package fsgraph

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OriginName is the sentinel name carried by the traversal root's vertex
const OriginName = "<origin>"

// Vertex is a snapshot of a single filesystem entry taken at scan time.
// The set of implementations is closed: [DirectoryVertex] and [FileVertex].
type Vertex interface {
	// TypeName returns the declared schema type of the vertex
	TypeName() string
	isVertex()
}

// DirectoryVertex is a directory found under the origin.
// Path is relative to the origin; the origin itself has an empty Path.
type DirectoryVertex struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// FileVertex is a regular file found under the origin.
// Extension is nil when the name has no extension component.
type FileVertex struct {
	Name      string  `json:"name"`
	Extension *string `json:"extension"`
	Path      string  `json:"path"`
}

func (DirectoryVertex) TypeName() string { return DirectoryType }
func (DirectoryVertex) isVertex()        {}

func (FileVertex) TypeName() string { return FileType }
func (FileVertex) isVertex()        {}

// OriginVertex returns the vertex representing the traversal root
func OriginVertex() DirectoryVertex {
	return DirectoryVertex{Name: OriginName, Path: ""}
}

// Equal reports whether a and b are the same variant with equal fields.
// Nil vertices are only equal to each other.
func Equal(a, b Vertex) bool {
	switch x := a.(type) {
	case DirectoryVertex:
		y, ok := b.(DirectoryVertex)
		return ok && x == y
	case FileVertex:
		y, ok := b.(FileVertex)
		if !ok || x.Name != y.Name || x.Path != y.Path {
			return false
		}
		if x.Extension == nil || y.Extension == nil {
			return x.Extension == nil && y.Extension == nil
		}
		return *x.Extension == *y.Extension
	case nil:
		return b == nil
	}
	return false
}

// vertexEnvelope is the externally tagged wire form of a Vertex.
// Exactly one field is set.
type vertexEnvelope struct {
	Directory *DirectoryVertex `json:"Directory,omitempty"`
	File      *FileVertex      `json:"File,omitempty"`
}

// MarshalVertex encodes v as {"Directory":{...}} or {"File":{...}}
func MarshalVertex(v Vertex) ([]byte, error) {
	var env vertexEnvelope
	switch x := v.(type) {
	case DirectoryVertex:
		env.Directory = &x
	case FileVertex:
		env.File = &x
	default:
		return nil, fmt.Errorf("cannot marshal vertex of type %T", v)
	}
	return json.Marshal(env)
}

// UnmarshalVertex decodes the output of [MarshalVertex]
func UnmarshalVertex(data []byte) (Vertex, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var env vertexEnvelope
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vertex: %w", err)
	}
	switch {
	case env.Directory != nil && env.File != nil:
		return nil, fmt.Errorf("vertex envelope carries more than one variant")
	case env.Directory != nil:
		return *env.Directory, nil
	case env.File != nil:
		return *env.File, nil
	}
	return nil, fmt.Errorf("vertex envelope carries no variant")
}
