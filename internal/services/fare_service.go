package services

import (
	"context"
	"fmt"

	"samayas/internal/domain"
	"samayas/internal/domain/models"
)

// DistanceProvider is the external road-distance lookup. Implementations
// live in internal/distance; tests inject a fixed stub.
type DistanceProvider interface {
	DistanceKm(ctx context.Context, pickup, drop string) (int, error)
}

// FareService computes deterministic fare breakdowns from the injected
// tariff table. Estimation itself is pure; only Quote touches the network,
// through the distance provider.
type FareService struct {
	table    models.TariffTable
	distance DistanceProvider
}

func NewFareService(table models.TariffTable, distance DistanceProvider) *FareService {
	if err := table.Validate(); err != nil {
		panic(err)
	}
	return &FareService{table: table, distance: distance}
}

// EstimateFare prices a trip under the flat fare policy: the minimum
// distance is billed at the per-km rate plus the driver allowance, and
// distance above the minimum is not billed separately.
//
// Inputs must already be validated. An unknown category/class or a negative
// distance is a broken calling contract, so this panics rather than
// degrading.
func (s *FareService) EstimateFare(category models.TripCategory, class models.VehicleClass, distanceKm int) models.FareBreakdown {
	if distanceKm < 0 {
		panic(fmt.Sprintf("estimate fare: negative distance %d", distanceKm))
	}
	tariff, ok := s.table.Lookup(category, class)
	if !ok {
		panic(fmt.Sprintf("estimate fare: no tariff for category %q class %q", category, class))
	}

	base := int64(tariff.MinimumKm) * tariff.RatePerKm
	return models.FareBreakdown{
		DistanceKm:      distanceKm,
		MinimumKm:       tariff.MinimumKm,
		RatePerKm:       tariff.RatePerKm,
		BaseFare:        base,
		AdditionalFare:  0,
		DriverAllowance: tariff.DriverAllowance,
		FinalAmount:     base + tariff.DriverAllowance,
	}
}

// Quote resolves the trip distance and prices it. Distance lookup failures
// are recoverable (the provider is an external service), unlike the
// programmer errors EstimateFare panics on.
func (s *FareService) Quote(ctx context.Context, category models.TripCategory, class models.VehicleClass, pickup, drop string) (models.FareBreakdown, error) {
	if !category.BillsByDistance() {
		return models.FareBreakdown{}, domain.ValidationError{Field: "category", Msg: "fare is not computed for this service"}
	}
	if !class.Valid() {
		return models.FareBreakdown{}, domain.ValidationError{Field: "vehicleType", Msg: "unknown vehicle type"}
	}

	km, err := s.distance.DistanceKm(ctx, pickup, drop)
	if err != nil {
		return models.FareBreakdown{}, domain.InternalError{Msg: "distance lookup failed", Err: err}
	}
	return s.EstimateFare(category, class, km), nil
}

// Tariffs exposes the immutable rate card, for the tariff endpoint.
func (s *FareService) Tariffs() models.TariffTable {
	return s.table
}
