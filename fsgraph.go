// Package fsgraph contains the vertex model and resolver contract for exposing a
// directory tree as a typed graph to a query interpreter.
//
// The graph has two vertex types, Directory and File, one entry edge
// (OriginDirectory) and two edges sourced from Directory:
// out_Directory_ContainsFile and out_Directory_Subdirectory. The filesystem is
// never materialized; every edge is answered by a fresh, lazy directory scan.
package fsgraph
