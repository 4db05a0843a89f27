package models

import "time"

// Provider is a leasing provider, admin-managed reference data.
type Provider struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	LeasingCompany string    `json:"leasing_company" db:"leasing_company"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
