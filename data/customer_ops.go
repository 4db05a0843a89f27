package data

import (
	"database/sql"
	"fmt"
	"time"

	"nlt_server_go/models"
)

// CreateCustomer inserts a new customer. The caller must have set ID and AgentID.
func CreateCustomer(customer *models.Customer) error {
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	query := `INSERT INTO customers (id, agent_id, name, phone, email, tax_code, created_at, updated_at)
	          VALUES (:id, :agent_id, :name, :phone, :email, :tax_code, :created_at, :updated_at)`
	if _, err := DB.NamedExec(query, customer); err != nil {
		return fmt.Errorf("CreateCustomer: failed to insert customer %s: %w", customer.Name, err)
	}
	return nil
}

// GetCustomerByID returns the customer with the given id, or nil if not found.
func GetCustomerByID(id string) (*models.Customer, error) {
	customer := &models.Customer{}
	err := DB.Get(customer, `SELECT * FROM customers WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetCustomerByID: failed to get customer %s: %w", id, err)
	}
	return customer, nil
}

// ListCustomers returns customers ordered by name. An empty agentID returns
// all customers (admin view); otherwise the list is scoped to that agent.
func ListCustomers(agentID string) ([]models.Customer, error) {
	var customers []models.Customer
	var err error
	if agentID == "" {
		err = DB.Select(&customers, `SELECT * FROM customers ORDER BY name`)
	} else {
		err = DB.Select(&customers, `SELECT * FROM customers WHERE agent_id = ? ORDER BY name`, agentID)
	}
	if err != nil {
		return nil, fmt.Errorf("ListCustomers: %w", err)
	}
	return customers, nil
}

// UpdateCustomer updates the contact fields of an existing customer.
func UpdateCustomer(customer *models.Customer) error {
	customer.UpdatedAt = time.Now().UTC()
	query := `UPDATE customers SET
	            name = :name, phone = :phone, email = :email,
	            tax_code = :tax_code, updated_at = :updated_at
	          WHERE id = :id`
	result, err := DB.NamedExec(query, customer)
	if err != nil {
		return fmt.Errorf("UpdateCustomer: failed to update customer %s: %w", customer.ID, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
