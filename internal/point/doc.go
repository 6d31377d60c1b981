/*
Package point provides a 2-space point value over float64 coordinates, its
derived distance from the origin, and classification of points into the
quadrants of the plane by the sign of their coordinates.

Points are plain values: every method takes a value receiver and returns a
copy, so a Point may be freely passed around and compared with ==.

The Box type bounds a set of points, and is what the batch report uses to
summarize the extent of its input.
*/
package point
