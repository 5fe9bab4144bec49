package domain

// GeoPoint represents a geographic coordinate in degrees (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}
