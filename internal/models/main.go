// Package models defines the core data structures for administrators,
// transport companies, vehicles, and trips.
package models

import "time"

// Admin represents a back-office administrator.
type Admin struct {
	// ID is the unique identifier for the admin.
	ID string `json:"id"`
	// Email is the normalized (trimmed, lower-case) login.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the admin password.
	PasswordHash []byte `json:"-"`
}

// TransportCompany is a carrier that owns vehicles and runs trips.
type TransportCompany struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
}

// CompanyUpdate carries the fields of a company update. Nil fields are left unchanged.
type CompanyUpdate struct {
	Name          *string
	Address       *string
	ContactNumber *string
}

// Vehicle belongs to a company by name. CompanyName is not checked
// against existing companies.
type Vehicle struct {
	ID            string `json:"id"`
	VehicleNumber string `json:"vehicleNumber"`
	VehicleType   string `json:"vehicleType"`
	Capacity      int    `json:"capacity"`
	CompanyName   string `json:"companyName"`
}

// VehicleUpdate carries the fields of a vehicle update. Nil fields are left unchanged.
type VehicleUpdate struct {
	VehicleNumber *string
	VehicleType   *string
	Capacity      *int
	CompanyName   *string
}

// Trip is a single scheduled journey and its payment state.
type Trip struct {
	ID                   string     `json:"id"`
	Source               string     `json:"source"`
	Destination          string     `json:"destination"`
	Price                float64    `json:"price"`
	TransportCompanyName string     `json:"transportCompanyName"`
	VehicleNumber        string     `json:"vehicleNumber"`
	TripDateTime         time.Time  `json:"tripDateTime"`
	Status               TripStatus `json:"status"`
}

// TripFilter narrows a trip listing. Empty fields match everything.
// Source and Destination match case-insensitive substrings.
type TripFilter struct {
	CompanyName   string
	VehicleNumber string
	Status        TripStatus
	Source        string
	Destination   string
}

// TripStatus is the payment state of a trip.
type TripStatus string

const (
	// TripPaid marks a trip as settled.
	TripPaid TripStatus = "paid"
	// TripNotPaid is the initial state of every trip.
	TripNotPaid TripStatus = "notpaid"
)

// Valid reports whether s is one of the known trip statuses.
func (s TripStatus) Valid() bool {
	return s == TripPaid || s == TripNotPaid
}
