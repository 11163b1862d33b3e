package types

import "fmt"

// ValidateIDPresent rejects empty identifiers before a request is built.
func ValidateIDPresent(id, field string) error {
	if id == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	return nil
}

// Validate checks the fields the backend will reject anyway, so the caller
// gets a clear error without a round trip.
func (r CreateBookingRequest) Validate() error {
	if err := ValidateIDPresent(r.VenueID, "venue_id"); err != nil {
		return err
	}
	if err := ValidateIDPresent(r.CourtID, "court_id"); err != nil {
		return err
	}
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return fmt.Errorf("start_time and end_time are required")
	}
	if !r.EndTime.After(r.StartTime) {
		return fmt.Errorf("end_time must be after start_time")
	}
	if r.Customer.Name == "" || r.Customer.Email == "" {
		return fmt.Errorf("customer name and email are required")
	}
	return nil
}

// Validate checks registration fields.
func (r RegisterUserRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	if r.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	return nil
}
