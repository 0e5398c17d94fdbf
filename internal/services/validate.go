package services

import (
	"fmt"
	"math"
	"route-optimization-service/internal/domain"
)

// ValidatePoint checks that p is a finite coordinate within the WGS84 range.
// The distance model itself accepts anything, so callers validate first.
func ValidatePoint(p domain.Point) error {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: latitude %v must be within [-90, 90]", ErrInvalidInput, p.Lat)
	}
	if math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) || p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("%w: longitude %v must be within [-180, 180]", ErrInvalidInput, p.Lng)
	}
	return nil
}
