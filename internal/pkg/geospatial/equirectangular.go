package geospatial

import (
	"errors"
	"math"
)

// EarthRadiusMiles is the mean earth radius used by Distance.
const EarthRadiusMiles = 3959.0

var (
	ErrInvalidLatitude  = errors.New("invalid latitude")
	ErrInvalidLongitude = errors.New("invalid longitude")
)

// ValidLatitude reports whether lat lies in [-90, 90]. NaN is never valid.
func ValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// ValidLongitude reports whether lon lies in [-180, 180]. NaN is never valid.
func ValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

// Distance returns the equirectangular approximation of the great-circle
// distance in miles between two points given in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if !ValidLatitude(lat1) || !ValidLatitude(lat2) {
		return 0, ErrInvalidLatitude
	}
	if !ValidLongitude(lon1) || !ValidLongitude(lon2) {
		return 0, ErrInvalidLongitude
	}

	phi1, lambda1 := toRad(lat1), toRad(lon1)
	phi2, lambda2 := toRad(lat2), toRad(lon2)

	dPhi := phi2 - phi1
	dLambda := lambda2 - lambda1
	phiMean := (phi1 + phi2) / 2

	x := math.Cos(phiMean) * dLambda
	return math.Sqrt(dPhi*dPhi+x*x) * EarthRadiusMiles, nil
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
