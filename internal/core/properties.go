package core

import (
	"fmt"

	"github.com/brettbedarf/fsgraph"
)

// propertyFunc reads one property off a present active vertex
type propertyFunc func(v fsgraph.Vertex) fsgraph.FieldValue

// field checks that the active vertex is a T before reading from it
func field[T fsgraph.Vertex](get func(T) fsgraph.FieldValue) propertyFunc {
	return func(v fsgraph.Vertex) fsgraph.FieldValue {
		x, ok := v.(T)
		if !ok {
			var want T
			panic(mismatch(want.TypeName(), v))
		}
		return get(x)
	}
}

// propertyTables maps declared type name -> property name -> reader
var propertyTables = map[string]map[string]propertyFunc{
	fsgraph.DirectoryType: {
		fsgraph.NameProperty: field(func(d fsgraph.DirectoryVertex) fsgraph.FieldValue {
			return fsgraph.String(d.Name)
		}),
		fsgraph.PathProperty: field(func(d fsgraph.DirectoryVertex) fsgraph.FieldValue {
			return fsgraph.String(d.Path)
		}),
		fsgraph.TypenameProperty: field(func(fsgraph.DirectoryVertex) fsgraph.FieldValue {
			return fsgraph.String(fsgraph.DirectoryType)
		}),
	},
	fsgraph.FileType: {
		fsgraph.NameProperty: field(func(f fsgraph.FileVertex) fsgraph.FieldValue {
			return fsgraph.String(f.Name)
		}),
		fsgraph.PathProperty: field(func(f fsgraph.FileVertex) fsgraph.FieldValue {
			return fsgraph.String(f.Path)
		}),
		fsgraph.ExtensionProperty: field(func(f fsgraph.FileVertex) fsgraph.FieldValue {
			return fsgraph.OptionalString(f.Extension)
		}),
		fsgraph.TypenameProperty: field(func(fsgraph.FileVertex) fsgraph.FieldValue {
			return fsgraph.String(fsgraph.FileType)
		}),
	},
}

// lookupProperty panics for anything outside the declared schema
func lookupProperty(typeName, propertyName string) propertyFunc {
	table, ok := propertyTables[typeName]
	if !ok {
		panic(fmt.Errorf("%w: properties of type %q", fsgraph.ErrUnimplemented, typeName))
	}
	get, ok := table[propertyName]
	if !ok {
		panic(fmt.Errorf("%w: property %q on type %q", fsgraph.ErrUnimplemented, propertyName, typeName))
	}
	return get
}

func mismatch(want string, got fsgraph.Vertex) error {
	if got == nil {
		return fmt.Errorf("%w: expected %s, got nil vertex", fsgraph.ErrVertexMismatch, want)
	}
	return fmt.Errorf("%w: expected %s, got %s", fsgraph.ErrVertexMismatch, want, got.TypeName())
}
