// Package geometry holds the polygon geometries of a set of spatial units, keyed by the unit
// identifier, and loads them from ESRI shapefiles or GeoJSON feature collections.
package geometry
