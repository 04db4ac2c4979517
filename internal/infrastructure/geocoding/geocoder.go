package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dinehub/food-marketplace/delivery-engine/config"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/dto"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/errs"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/geo"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// Geocoder resolves free-text addresses to coordinates through a
// Nominatim-compatible HTTP endpoint.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (geo.Point, error)
}

type GeocoderImpl struct {
	host string
	cb   *gobreaker.CircuitBreaker[[]byte]
}

func CreateGeocoder(config *config.Config, cb *gobreaker.CircuitBreaker[[]byte]) Geocoder {
	return &GeocoderImpl{
		host: config.GeocoderConfig.Host,
		cb:   cb,
	}
}

func (g *GeocoderImpl) Geocode(ctx context.Context, address string) (geo.Point, error) {
	body, err := g.cb.Execute(func() ([]byte, error) {
		req := httpclient.HttpRequest{
			URL:    fmt.Sprintf("%s/search?format=json&limit=1&q=%s", g.host, url.QueryEscape(address)),
			Method: "GET",
			Headers: map[string]string{
				"Accept": "application/json",
			},
		}

		statusCode, respBody, err := httpclient.SendRequest(ctx, req)
		if err != nil {
			return nil, err
		}
		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("geocoder returned non-OK status: %d", statusCode)
		}

		return respBody, nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "Geocode").Msg("")
		return geo.Point{}, errs.ErrGeocodeFailure
	}

	var results []dto.GeocodeResult
	if err := json.Unmarshal(body, &results); err != nil {
		log.Error().Err(err).Str("component", "Geocode").Msg("")
		return geo.Point{}, errs.ErrGeocodeFailure
	}

	if len(results) == 0 {
		return geo.Point{}, errs.ErrGeocodeFailure
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return geo.Point{}, errs.ErrGeocodeFailure
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return geo.Point{}, errs.ErrGeocodeFailure
	}

	return geo.Point{Latitude: lat, Longitude: lon}, nil
}
