package services

import (
	"testing"
	"time"

	"samayas/internal/domain/models"
)

var validateNow = time.Date(2026, time.March, 10, 15, 0, 0, 0, time.Local)

func validOneWay() models.BookingRequest {
	return models.BookingRequest{
		Category:       models.TripOneWay,
		VehicleClass:   models.VehicleSedan,
		PickupLocation: "Chennai Airport",
		DropLocation:   "Madurai",
		Date:           "2026-03-12",
		Time:           "09:30",
		Period:         "AM",
		CustomerName:   "Arun",
		CustomerPhone:  "9876543210",
	}
}

func TestValidateBookingAcceptsCompleteForms(t *testing.T) {
	tests := []struct {
		name string
		req  models.BookingRequest
	}{
		{"one way", validOneWay()},
		{"round trip", func() models.BookingRequest {
			r := validOneWay()
			r.Category = models.TripRoundTrip
			r.ReturnDate = "2026-03-14"
			return r
		}()},
		{"same-day round trip", func() models.BookingRequest {
			r := validOneWay()
			r.Category = models.TripRoundTrip
			r.ReturnDate = r.Date
			return r
		}()},
		{"other service", func() models.BookingRequest {
			r := validOneWay()
			r.Category = models.TripOtherService
			r.VehicleClass = ""
			r.ServiceName = models.ServiceActingDriver
			return r
		}()},
		{"recovery without drop", func() models.BookingRequest {
			r := validOneWay()
			r.Category = models.TripOtherService
			r.VehicleClass = ""
			r.ServiceName = models.ServiceRecovery
			r.DropLocation = ""
			return r
		}()},
		{"booking for today", func() models.BookingRequest {
			r := validOneWay()
			r.Date = "2026-03-10"
			return r
		}()},
		{"phone with spaces", func() models.BookingRequest {
			r := validOneWay()
			r.CustomerPhone = "98765 43210"
			return r
		}()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if errs := ValidateBooking(tc.req, validateNow); !errs.Empty() {
				t.Errorf("unexpected errors: %v", errs)
			}
		})
	}
}

func TestValidateBookingEmptyFormReportsEveryField(t *testing.T) {
	errs := ValidateBooking(models.BookingRequest{Category: models.TripOneWay}, validateNow)

	want := map[string]string{
		FieldVehicleType:    "Please select a vehicle",
		FieldPickupLocation: "Pickup location is required",
		FieldDropLocation:   "Drop location is required",
		FieldDate:           "Date is required",
		FieldTime:           "Time is required",
		FieldName:           "Name is required",
		FieldPhone:          "Phone number is required",
	}
	if len(errs) != len(want) {
		t.Errorf("got %d errors, want %d: %v", len(errs), len(want), errs)
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("errs[%q] = %q, want %q", field, errs[field], msg)
		}
	}
}

func TestValidateBookingFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.BookingRequest)
		field   string
		message string
	}{
		{"missing vehicle", func(r *models.BookingRequest) { r.VehicleClass = "" },
			FieldVehicleType, "Please select a vehicle"},
		{"unknown vehicle", func(r *models.BookingRequest) { r.VehicleClass = "bus" },
			FieldVehicleType, "Please select a vehicle"},
		{"blank pickup", func(r *models.BookingRequest) { r.PickupLocation = "   " },
			FieldPickupLocation, "Pickup location is required"},
		{"blank drop", func(r *models.BookingRequest) { r.DropLocation = "" },
			FieldDropLocation, "Drop location is required"},
		{"missing date", func(r *models.BookingRequest) { r.Date = "" },
			FieldDate, "Date is required"},
		{"garbage date", func(r *models.BookingRequest) { r.Date = "12/03/2026" },
			FieldDate, "Please enter a valid date"},
		{"yesterday", func(r *models.BookingRequest) { r.Date = "2026-03-09" },
			FieldDate, "Date cannot be in the past"},
		{"missing time", func(r *models.BookingRequest) { r.Time = "" },
			FieldTime, "Time is required"},
		{"garbage time", func(r *models.BookingRequest) { r.Time = "half past nine" },
			FieldTime, "Please enter a valid time"},
		{"missing name", func(r *models.BookingRequest) { r.CustomerName = "  " },
			FieldName, "Name is required"},
		{"missing phone", func(r *models.BookingRequest) { r.CustomerPhone = "" },
			FieldPhone, "Phone number is required"},
		{"nine digit phone", func(r *models.BookingRequest) { r.CustomerPhone = "987654321" },
			FieldPhone, "Please enter a valid 10-digit phone number"},
		{"eleven digit phone", func(r *models.BookingRequest) { r.CustomerPhone = "98765432100" },
			FieldPhone, "Please enter a valid 10-digit phone number"},
		{"alphabetic phone", func(r *models.BookingRequest) { r.CustomerPhone = "98765abcde" },
			FieldPhone, "Please enter a valid 10-digit phone number"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validOneWay()
			tc.mutate(&req)
			errs := ValidateBooking(req, validateNow)
			if errs[tc.field] != tc.message {
				t.Errorf("errs[%q] = %q, want %q", tc.field, errs[tc.field], tc.message)
			}
			if len(errs) != 1 {
				t.Errorf("expected exactly one error, got %v", errs)
			}
		})
	}
}

func TestValidateBookingRoundTripReturnDate(t *testing.T) {
	base := func() models.BookingRequest {
		r := validOneWay()
		r.Category = models.TripRoundTrip
		return r
	}

	t.Run("required", func(t *testing.T) {
		errs := ValidateBooking(base(), validateNow)
		if errs[FieldReturnDate] != "Return date is required" {
			t.Errorf("errs = %v", errs)
		}
	})
	t.Run("must parse", func(t *testing.T) {
		r := base()
		r.ReturnDate = "next friday"
		errs := ValidateBooking(r, validateNow)
		if errs[FieldReturnDate] != "Please enter a valid return date" {
			t.Errorf("errs = %v", errs)
		}
	})
	t.Run("before pickup rejected", func(t *testing.T) {
		r := base()
		r.ReturnDate = "2026-03-11"
		errs := ValidateBooking(r, validateNow)
		if errs[FieldReturnDate] != "Return date cannot be before the pickup date" {
			t.Errorf("errs = %v", errs)
		}
	})
	t.Run("not required for one way", func(t *testing.T) {
		errs := ValidateBooking(validOneWay(), validateNow)
		if _, ok := errs[FieldReturnDate]; ok {
			t.Errorf("one way must not require a return date: %v", errs)
		}
	})
}

func TestValidateBookingOtherService(t *testing.T) {
	base := func() models.BookingRequest {
		r := validOneWay()
		r.Category = models.TripOtherService
		r.VehicleClass = ""
		r.ServiceName = models.ServiceToursTravels
		return r
	}

	t.Run("service required", func(t *testing.T) {
		r := base()
		r.ServiceName = ""
		errs := ValidateBooking(r, validateNow)
		if errs[FieldServiceType] != "Please select a service" {
			t.Errorf("errs = %v", errs)
		}
	})
	t.Run("unknown service rejected", func(t *testing.T) {
		r := base()
		r.ServiceName = "Helicopter"
		errs := ValidateBooking(r, validateNow)
		if errs[FieldServiceType] != "Please select a service" {
			t.Errorf("errs = %v", errs)
		}
	})
	t.Run("no vehicle needed", func(t *testing.T) {
		if errs := ValidateBooking(base(), validateNow); !errs.Empty() {
			t.Errorf("unexpected errors: %v", errs)
		}
	})
	t.Run("drop still required outside recovery", func(t *testing.T) {
		r := base()
		r.DropLocation = ""
		errs := ValidateBooking(r, validateNow)
		if errs[FieldDropLocation] != "Drop location is required" {
			t.Errorf("errs = %v", errs)
		}
	})
}
