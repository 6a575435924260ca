package models

import "time"

// Customer represents a CRM customer
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerInput holds the fields accepted by customer creation
type CustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Validate collects field-level problems with the input.
// Email uniqueness is checked at the service layer since it needs the store.
func (in *CustomerInput) Validate() []string {
	var errs []string
	if in.Name == "" {
		errs = append(errs, "Name is required.")
	}
	if in.Email == "" {
		errs = append(errs, "Email is required.")
	}
	if !ValidatePhone(in.Phone) {
		errs = append(errs, "Invalid phone format.")
	}
	return errs
}
