package services

import (
	"context"
	"errors"
	"testing"

	"samayas/internal/domain"
	"samayas/internal/domain/models"
)

type stubDistance struct {
	km  int
	err error
}

func (s stubDistance) DistanceKm(ctx context.Context, pickup, drop string) (int, error) {
	return s.km, s.err
}

func newFareService(t *testing.T, km int) *FareService {
	t.Helper()
	return NewFareService(models.DefaultTariffTable(), stubDistance{km: km})
}

func TestEstimateFareFlatPolicy(t *testing.T) {
	svc := newFareService(t, 0)

	tests := []struct {
		name     string
		category models.TripCategory
		class    models.VehicleClass
		distance int
		final    int64
	}{
		{"one way sedan at 150km", models.TripOneWay, models.VehicleSedan, 150, 130*14 + 400},
		{"one way sedan below minimum", models.TripOneWay, models.VehicleSedan, 40, 130*14 + 400},
		{"one way etios matches sedan", models.TripOneWay, models.VehicleEtios, 150, 130*14 + 400},
		{"one way suv", models.TripOneWay, models.VehicleSuv, 150, 130*19 + 500},
		{"one way innova", models.TripOneWay, models.VehicleInnova, 150, 130*20 + 500},
		{"round trip sedan", models.TripRoundTrip, models.VehicleSedan, 600, 250*13 + 400},
		{"round trip suv", models.TripRoundTrip, models.VehicleSuv, 600, 250*18 + 500},
		{"round trip innova", models.TripRoundTrip, models.VehicleInnova, 600, 250*18 + 500},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fare := svc.EstimateFare(tc.category, tc.class, tc.distance)
			if fare.FinalAmount != tc.final {
				t.Errorf("FinalAmount = %d, want %d", fare.FinalAmount, tc.final)
			}
			if fare.AdditionalFare != 0 {
				t.Errorf("AdditionalFare = %d, want 0", fare.AdditionalFare)
			}
			if fare.FinalAmount != fare.BaseFare+fare.DriverAllowance {
				t.Errorf("breakdown does not add up: base %d + bata %d != final %d",
					fare.BaseFare, fare.DriverAllowance, fare.FinalAmount)
			}
			if fare.DistanceKm != tc.distance {
				t.Errorf("DistanceKm = %d, want %d", fare.DistanceKm, tc.distance)
			}
		})
	}
}

func TestEstimateFareDeterministic(t *testing.T) {
	svc := newFareService(t, 0)
	a := svc.EstimateFare(models.TripOneWay, models.VehicleSuv, 220)
	b := svc.EstimateFare(models.TripOneWay, models.VehicleSuv, 220)
	if a != b {
		t.Errorf("same inputs produced different breakdowns: %+v vs %+v", a, b)
	}
}

func TestEstimateFarePanicsOnBrokenContract(t *testing.T) {
	svc := newFareService(t, 0)

	assertPanics := func(name string, fn func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			fn()
		})
	}
	assertPanics("negative distance", func() {
		svc.EstimateFare(models.TripOneWay, models.VehicleSedan, -1)
	})
	assertPanics("unknown class", func() {
		svc.EstimateFare(models.TripOneWay, models.VehicleClass("bus"), 100)
	})
	assertPanics("non-billed category", func() {
		svc.EstimateFare(models.TripOtherService, models.VehicleSedan, 100)
	})
}

func TestQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("prices the provider distance", func(t *testing.T) {
		svc := newFareService(t, 310)
		fare, err := svc.Quote(ctx, models.TripOneWay, models.VehicleSedan, "Chennai", "Madurai")
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		if fare.DistanceKm != 310 {
			t.Errorf("DistanceKm = %d, want 310", fare.DistanceKm)
		}
		if fare.FinalAmount != 130*14+400 {
			t.Errorf("FinalAmount = %d, want %d", fare.FinalAmount, 130*14+400)
		}
	})

	t.Run("rejects non-billed category", func(t *testing.T) {
		svc := newFareService(t, 310)
		_, err := svc.Quote(ctx, models.TripOtherService, models.VehicleSedan, "a", "b")
		if !domain.IsValidation(err) {
			t.Errorf("err = %v, want validation error", err)
		}
	})

	t.Run("rejects unknown vehicle class", func(t *testing.T) {
		svc := newFareService(t, 310)
		_, err := svc.Quote(ctx, models.TripOneWay, models.VehicleClass("bus"), "a", "b")
		if !domain.IsValidation(err) {
			t.Errorf("err = %v, want validation error", err)
		}
	})

	t.Run("wraps distance provider failure", func(t *testing.T) {
		boom := errors.New("maps unreachable")
		svc := NewFareService(models.DefaultTariffTable(), stubDistance{err: boom})
		_, err := svc.Quote(ctx, models.TripOneWay, models.VehicleSedan, "a", "b")
		if !domain.IsInternal(err) {
			t.Fatalf("err = %v, want internal error", err)
		}
		if !errors.Is(err, boom) {
			t.Errorf("cause not preserved: %v", err)
		}
	})
}

func TestNewFareServicePanicsOnIncompleteTable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for incomplete tariff table")
		}
	}()
	table := models.DefaultTariffTable()
	delete(table.Rates[models.TripOneWay], models.VehicleInnova)
	NewFareService(table, stubDistance{})
}
