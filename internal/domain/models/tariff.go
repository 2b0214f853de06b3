package models

import "fmt"

// Tariff is one rate-card row: price per kilometre, flat driver allowance
// (bata) and the billable minimum distance for the trip category.
type Tariff struct {
	RatePerKm       int64 `json:"ratePerKm"`
	DriverAllowance int64 `json:"bata"`
	MinimumKm       int   `json:"minKm"`
}

// TariffTable maps (trip category, vehicle class) to a tariff. Immutable at
// runtime; built once and injected wherever fares are computed.
type TariffTable struct {
	Rates map[TripCategory]map[VehicleClass]Tariff
}

const (
	oneWayMinimumKm    = 130
	roundTripMinimumKm = 250
)

// DefaultTariffTable returns the published Samayas rate card.
func DefaultTariffTable() TariffTable {
	return TariffTable{
		Rates: map[TripCategory]map[VehicleClass]Tariff{
			TripOneWay: {
				VehicleSedan:  {RatePerKm: 14, DriverAllowance: 400, MinimumKm: oneWayMinimumKm},
				VehicleEtios:  {RatePerKm: 14, DriverAllowance: 400, MinimumKm: oneWayMinimumKm},
				VehicleSuv:    {RatePerKm: 19, DriverAllowance: 500, MinimumKm: oneWayMinimumKm},
				VehicleInnova: {RatePerKm: 20, DriverAllowance: 500, MinimumKm: oneWayMinimumKm},
			},
			TripRoundTrip: {
				VehicleSedan:  {RatePerKm: 13, DriverAllowance: 400, MinimumKm: roundTripMinimumKm},
				VehicleEtios:  {RatePerKm: 13, DriverAllowance: 400, MinimumKm: roundTripMinimumKm},
				VehicleSuv:    {RatePerKm: 18, DriverAllowance: 500, MinimumKm: roundTripMinimumKm},
				VehicleInnova: {RatePerKm: 18, DriverAllowance: 500, MinimumKm: roundTripMinimumKm},
			},
		},
	}
}

// TariffNotes are the informational lines published alongside the rate
// card. Display text only; none of it participates in fare computation.
type TariffNotes struct {
	General    string   `json:"general"`
	DropTrips  []string `json:"dropTrips"`
	RoundTrips []string `json:"roundTrips"`
}

func DefaultTariffNotes() TariffNotes {
	return TariffNotes{
		General: "Toll fees, Inter-State Permit, and GST charges (if any) are extra.",
		DropTrips: []string{
			"Driver Bata Rs.400",
			"Waiting Charges Rs.100 per hour",
			"Minimum 130 kms/day",
		},
		RoundTrips: []string{
			"Driver Bata Rs.300/day",
			"Minimum 250 kms/day (Bangalore pickup: 300 kms/day)",
			"Hill Station Charges: Rs.300 (Depend upon location the charges may vary)",
			"1 Day = 1 Calendar Day (12 AM - Next 12 AM)",
		},
	}
}

// Lookup returns the tariff for a category/class pair.
func (t TariffTable) Lookup(c TripCategory, v VehicleClass) (Tariff, bool) {
	byClass, ok := t.Rates[c]
	if !ok {
		return Tariff{}, false
	}
	tr, ok := byClass[v]
	return tr, ok
}

// Validate checks the completeness invariant: every vehicle class must have
// an entry for every distance-billed trip category.
func (t TariffTable) Validate() error {
	for _, c := range []TripCategory{TripOneWay, TripRoundTrip} {
		byClass, ok := t.Rates[c]
		if !ok {
			return fmt.Errorf("tariff table: missing category %q", c)
		}
		for _, v := range VehicleClasses {
			tr, ok := byClass[v]
			if !ok {
				return fmt.Errorf("tariff table: missing %s entry for %q", c, v)
			}
			if tr.RatePerKm <= 0 || tr.DriverAllowance < 0 || tr.MinimumKm <= 0 {
				return fmt.Errorf("tariff table: invalid %s entry for %q", c, v)
			}
		}
	}
	return nil
}
