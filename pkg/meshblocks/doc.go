// Package meshblocks implements the stages of the meshblocks domain.
//
// The raw stage downloads an archive of meshblock geometries and unpacks it into
// <data>/raw/meshblocks/<aggregation_level>, renaming every file after the archive name. It only
// runs on an empty directory: when files are already there it logs a warning and does nothing.
//
// The processed stage reads the geometries from the raw directory and writes the adjacency matrix
// to <data>/processed/meshblocks/<aggregation_level>/<STRATEGY>.csv, and optionally the neighbour
// graph next to it as <STRATEGY>.dot.
package meshblocks
