package services

import (
	"time"

	"samayas/internal/domain"
	"samayas/internal/domain/models"
	"samayas/internal/utils"
)

// Form field names, matching the frontend's input names.
const (
	FieldServiceType    = "serviceType"
	FieldVehicleType    = "vehicleType"
	FieldPickupLocation = "pickupLocation"
	FieldDropLocation   = "dropLocation"
	FieldDate           = "date"
	FieldTime           = "time"
	FieldReturnDate     = "returnDate"
	FieldName           = "name"
	FieldPhone          = "phone"
)

// ValidateBooking runs the full per-field rule set for one submit attempt
// and returns the error map. Empty map means submit-ready.
func ValidateBooking(req models.BookingRequest, now time.Time) domain.FieldErrors {
	errs := domain.FieldErrors{}

	switch req.Category {
	case models.TripOneWay, models.TripRoundTrip:
		if !req.VehicleClass.Valid() {
			errs[FieldVehicleType] = "Please select a vehicle"
		}
	case models.TripOtherService:
		if !models.ValidOtherService(req.ServiceName) {
			errs[FieldServiceType] = "Please select a service"
		}
	}

	if utils.TrimOrEmpty(req.PickupLocation) == "" {
		errs[FieldPickupLocation] = "Pickup location is required"
	}
	if utils.TrimOrEmpty(req.DropLocation) == "" && !dropOptional(req) {
		errs[FieldDropLocation] = "Drop location is required"
	}

	validateDate(req, now, errs)

	if utils.TrimOrEmpty(req.Time) == "" {
		errs[FieldTime] = "Time is required"
	} else if _, err := utils.ParseClock(req.Time); err != nil {
		errs[FieldTime] = "Please enter a valid time"
	}

	if utils.TrimOrEmpty(req.CustomerName) == "" {
		errs[FieldName] = "Name is required"
	}

	phone := utils.StripSpaces(req.CustomerPhone)
	if phone == "" {
		errs[FieldPhone] = "Phone number is required"
	} else if len(phone) != 10 || !utils.IsDigits(phone) {
		errs[FieldPhone] = "Please enter a valid 10-digit phone number"
	}

	return errs
}

// dropOptional: recovery jobs may not have a destination yet (the vehicle is
// towed wherever the customer decides later).
func dropOptional(req models.BookingRequest) bool {
	return req.Category == models.TripOtherService && req.ServiceName == models.ServiceRecovery
}

func validateDate(req models.BookingRequest, now time.Time, errs domain.FieldErrors) {
	today := utils.Today(now)

	if utils.TrimOrEmpty(req.Date) == "" {
		errs[FieldDate] = "Date is required"
		return
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		errs[FieldDate] = "Please enter a valid date"
		return
	}
	if date.Before(today) {
		errs[FieldDate] = "Date cannot be in the past"
		return
	}

	if req.Category != models.TripRoundTrip {
		return
	}
	if utils.TrimOrEmpty(req.ReturnDate) == "" {
		errs[FieldReturnDate] = "Return date is required"
		return
	}
	ret, err := utils.ParseDate(req.ReturnDate)
	if err != nil {
		errs[FieldReturnDate] = "Please enter a valid return date"
		return
	}
	// same-day round trips are allowed
	if ret.Before(date) {
		errs[FieldReturnDate] = "Return date cannot be before the pickup date"
	}
}
