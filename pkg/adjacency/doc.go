// Package adjacency computes spatial weights matrices from a set of polygon geometries.
//
// Two strategies are supported:
//
//   - Contiguity ("QUEEN"): two units are neighbours when their boundaries share at least one
//     point, a common edge or a single corner. Weights are 0 or 1.
//   - Distance ("INVD"): the weight of a pair is the inverse of the distance between the unit
//     centroids, for pairs closer than the threshold, 0 otherwise.
//
// The distance threshold is always required. A threshold of +Inf connects every pair of units and
// produces a dense matrix, which grows with the square of the unit count.
//
// Matrices are indexed by the unit identifiers in the iteration order of the geometry set and can
// be persisted as CSV or exported as a neighbour graph in the DOT language.
package adjacency
