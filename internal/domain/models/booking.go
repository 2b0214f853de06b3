package models

import "strings"

// TripCategory selects which tab of the booking form a request belongs to.
type TripCategory string

const (
	TripOneWay       TripCategory = "one-way"
	TripRoundTrip    TripCategory = "round-trip"
	TripOtherService TripCategory = "other-service"
)

func (c TripCategory) Valid() bool {
	switch c {
	case TripOneWay, TripRoundTrip, TripOtherService:
		return true
	}
	return false
}

// BillsByDistance reports whether the category participates in fare
// computation. Other services are quoted manually by the operator.
func (c TripCategory) BillsByDistance() bool {
	return c == TripOneWay || c == TripRoundTrip
}

func (c TripCategory) Display() string {
	switch c {
	case TripOneWay:
		return "One Way"
	case TripRoundTrip:
		return "Round Trip"
	case TripOtherService:
		return "Other Service"
	}
	return string(c)
}

type VehicleClass string

const (
	VehicleSedan  VehicleClass = "sedan"
	VehicleEtios  VehicleClass = "etios"
	VehicleSuv    VehicleClass = "suv"
	VehicleInnova VehicleClass = "innova"
)

// VehicleClasses lists every bookable class, in tariff-table order.
var VehicleClasses = []VehicleClass{VehicleSedan, VehicleEtios, VehicleSuv, VehicleInnova}

func (v VehicleClass) Valid() bool {
	for _, k := range VehicleClasses {
		if v == k {
			return true
		}
	}
	return false
}

func (v VehicleClass) Display() string {
	return strings.ToUpper(string(v))
}

// Service names offered under the "other service" tab.
const (
	ServiceActingDriver = "Acting Driver"
	ServiceToursTravels = "Tours & Travels"
	ServiceRecovery     = "Recovery Services"
)

var OtherServiceNames = []string{ServiceActingDriver, ServiceToursTravels, ServiceRecovery}

func ValidOtherService(name string) bool {
	for _, s := range OtherServiceNames {
		if s == name {
			return true
		}
	}
	return false
}

// BookingRequest is one in-progress booking form. It is ephemeral: it lives
// only inside a booking session and is never persisted.
type BookingRequest struct {
	Category     TripCategory `json:"category"`
	VehicleClass VehicleClass `json:"vehicleType,omitempty"`
	ServiceName  string       `json:"serviceType,omitempty"`

	PickupLocation string `json:"pickupLocation"`
	DropLocation   string `json:"dropLocation"`

	Date       string `json:"date"` // YYYY-MM-DD
	Time       string `json:"time"` // HH:MM
	Period     string `json:"period,omitempty"`
	ReturnDate string `json:"returnDate,omitempty"` // round trip only

	CustomerName  string `json:"name"`
	CustomerPhone string `json:"phone"`
}

// FullTime renders the clock value with its AM/PM period for display.
func (r BookingRequest) FullTime() string {
	t := strings.TrimSpace(r.Time)
	p := strings.TrimSpace(r.Period)
	if t == "" {
		return ""
	}
	if p == "" {
		return t
	}
	return t + " " + p
}

// FareBreakdown is derived from a validated request plus a distance value.
// Under the flat fare policy AdditionalFare is always zero; it is kept so
// summaries and notification payloads have a stable shape.
type FareBreakdown struct {
	DistanceKm      int   `json:"distanceKm"`
	MinimumKm       int   `json:"minKm"`
	RatePerKm       int64 `json:"ratePerKm"`
	BaseFare        int64 `json:"baseFare"`
	AdditionalFare  int64 `json:"addFare"`
	DriverAllowance int64 `json:"bata"`
	FinalAmount     int64 `json:"finalAmount"`
}
