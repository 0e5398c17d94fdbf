package geo

import (
	"math"
	"route-optimization-service/internal/domain"
)

// Mean Earth radius used by every distance in the service.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance between a and b in kilometres.
//
// Inputs are not validated; callers reject out-of-range coordinates at the
// boundary. The result is symmetric and zero for identical points.
func Distance(a, b domain.Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	// Rounding can push h just past 1 for antipodal points.
	h = math.Min(1, math.Max(0, h))

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// BuildMatrix computes the full pairwise distance matrix over points.
// Only the upper triangle is evaluated; the lower one is mirrored so the
// matrix is exactly symmetric even under floating-point rounding.
func BuildMatrix(points []domain.Point) domain.DistanceMatrix {
	n := len(points)
	m := make(domain.DistanceMatrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Distance(points[i], points[j])
			m[i][j] = d
			m[j][i] = d
		}
	}

	return m
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
