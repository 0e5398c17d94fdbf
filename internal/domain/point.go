package domain

import "time"

// Immutable geographic coordinate (latitude, longitude) in decimal degrees.
// A Point has no identity of its own; the depot and each stop are told apart
// by their index in the canonical point list.
type Point struct {
	Lat float64
	Lng float64
}

// Represents a single delivery location supplied by the caller.
// ServiceTime is carried through but does not affect distance or ordering.
type Stop struct {
	OrderID     string
	Point       Point
	ServiceTime time.Duration
}

// CanonicalPoints returns [depot, stop_1, ..., stop_n]. Every route produced
// for a request is expressed as indices into this list.
func CanonicalPoints(depot Point, stops []Stop) []Point {
	points := make([]Point, 0, 1+len(stops))
	points = append(points, depot)
	for _, s := range stops {
		points = append(points, s.Point)
	}
	return points
}
