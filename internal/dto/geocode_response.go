package dto

// GeocodeResult is one candidate returned by the Nominatim-style geocoder.
// Coordinates come back as strings on the wire.
type GeocodeResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
