package geo

import (
	"math"
	"route-optimization-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	delhi  = domain.Point{Lat: 28.6139, Lng: 77.2090}
	mumbai = domain.Point{Lat: 19.0760, Lng: 72.8777}
	london = domain.Point{Lat: 51.5074, Lng: -0.1278}
	paris  = domain.Point{Lat: 48.8566, Lng: 2.3522}
)

func TestDistanceKnownPairs(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Point
		want float64
	}{
		{name: "delhi to mumbai", a: delhi, b: mumbai, want: 1148.1},
		{name: "london to paris", a: london, b: paris, want: 343.5},
		{name: "one degree of latitude", a: domain.Point{}, b: domain.Point{Lat: 1}, want: 111.195},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), 1.0)
		})
	}
}

func TestDistanceIdenticalPointsIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Distance(delhi, delhi))
}

func TestDistanceIsSymmetric(t *testing.T) {
	points := []domain.Point{delhi, mumbai, london, paris, {Lat: -33.8688, Lng: 151.2093}}
	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, Distance(a, b), Distance(b, a))
		}
	}
}

func TestDistanceAntipodalIsHalfCircumference(t *testing.T) {
	d := Distance(domain.Point{Lat: 0, Lng: 0}, domain.Point{Lat: 0, Lng: 180})
	assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1e-6)
}

func TestDistanceAntipodalPairsAreFinite(t *testing.T) {
	pairs := [][2]domain.Point{
		{{Lat: 45, Lng: 0}, {Lat: -45, Lng: 180}},
		{{Lat: -88.5, Lng: -180}, {Lat: 88.5, Lng: 0}},
		{{Lat: 28.6139, Lng: 77.2090}, {Lat: -28.6139, Lng: -102.7910}},
	}
	for _, p := range pairs {
		d := Distance(p[0], p[1])
		require.False(t, math.IsNaN(d), "%v / %v", p[0], p[1])
		assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1e-3)
	}
}

func TestDistanceAntipodalGridIsFinite(t *testing.T) {
	for lat := -90.0; lat <= 90.0; lat += 0.5 {
		for lng := -180.0; lng <= 0.0; lng += 0.5 {
			a := domain.Point{Lat: lat, Lng: lng}
			b := domain.Point{Lat: -lat, Lng: lng + 180}
			d := Distance(a, b)
			if math.IsNaN(d) || d < 0 {
				t.Fatalf("Distance(%v, %v) = %v", a, b, d)
			}
		}
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	points := []domain.Point{delhi, mumbai, london, paris}
	for _, a := range points {
		for _, b := range points {
			for _, c := range points {
				assert.LessOrEqual(t, Distance(a, c), Distance(a, b)+Distance(b, c)+1e-9)
			}
		}
	}
}

func TestBuildMatrix(t *testing.T) {
	points := []domain.Point{delhi, mumbai, delhi, paris}
	m := BuildMatrix(points)

	require.Equal(t, 4, m.Size())
	for i := range points {
		require.Len(t, m[i], 4)
		assert.Equal(t, 0.0, m[i][i])
		for j := range points {
			assert.Equal(t, m[i][j], m[j][i])
			assert.GreaterOrEqual(t, m[i][j], 0.0)
		}
	}

	// Duplicate coordinates keep distinct rows and a zero arc between them.
	assert.Equal(t, 0.0, m[0][2])
	assert.Equal(t, m[0][1], m[2][1])
}

func TestBuildMatrixEmpty(t *testing.T) {
	assert.Equal(t, 0, BuildMatrix(nil).Size())
}

func TestMatrixMeters(t *testing.T) {
	m := domain.DistanceMatrix{
		{0, 1.2345},
		{1.2345, 0},
	}
	meters := m.Meters()
	assert.Equal(t, int64(1234), meters[0][1])
	assert.Equal(t, int64(0), meters[1][1])

	m[0][1] = math.NaN()
	assert.Equal(t, int64(math.MaxInt64), m.Meters()[0][1])
}
