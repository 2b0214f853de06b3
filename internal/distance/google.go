package distance

import (
	"context"
	"fmt"
	"math"

	"googlemaps.github.io/maps"
)

// GoogleProvider resolves distances through the Google Maps Directions API.
type GoogleProvider struct {
	client *maps.Client
}

func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleProvider{client: client}, nil
}

func (p *GoogleProvider) DistanceKm(ctx context.Context, pickup, drop string) (int, error) {
	r := &maps.DirectionsRequest{
		Origin:      pickup,
		Destination: drop,
		Mode:        maps.TravelModeDriving,
		Language:    "en",
		Region:      "IN",
	}

	routes, _, err := p.client.Directions(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, fmt.Errorf("no route found between %q and %q", pickup, drop)
	}

	meters := 0
	for _, leg := range routes[0].Legs {
		meters += leg.Distance.Meters
	}
	return int(math.Round(float64(meters) / 1000.0)), nil
}
