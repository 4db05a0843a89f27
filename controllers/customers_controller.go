package controllers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"nlt_server_go/data"
	"nlt_server_go/models"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ListCustomersHandler returns the customers visible to the caller.
// GET /api/customers
func ListCustomersHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := data.ListCustomers(scopeAgentID(r))
	if err != nil {
		log.Printf("customers: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list customers.")
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

// CreateCustomerHandler creates a customer owned by the calling agent.
// POST /api/customers
func CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(customer.Name) == "" {
		respondError(w, http.StatusBadRequest, "Customer name must not be empty.")
		return
	}

	customer.ID = uuid.NewString()
	customer.AgentID = requestAgentID(r)
	if err := data.CreateCustomer(&customer); err != nil {
		log.Printf("customers: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create customer.")
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

// GetCustomerHandler returns one customer if the caller may see it.
// GET /api/customers/{id}
func GetCustomerHandler(w http.ResponseWriter, r *http.Request) {
	customer, ok := loadScopedCustomer(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

// UpdateCustomerHandler updates a customer's contact fields.
// PUT /api/customers/{id}
func UpdateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	customer, ok := loadScopedCustomer(w, r)
	if !ok {
		return
	}

	var req models.Customer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Name) != "" {
		customer.Name = req.Name
	}
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.TaxCode = req.TaxCode

	if err := data.UpdateCustomer(customer); err != nil {
		if err == sql.ErrNoRows {
			respondError(w, http.StatusNotFound, "Customer not found.")
			return
		}
		log.Printf("customers: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update customer.")
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

// loadScopedCustomer fetches the customer from the path and enforces the
// ownership scope. Writes the error response itself when returning !ok.
func loadScopedCustomer(w http.ResponseWriter, r *http.Request) (*models.Customer, bool) {
	customer, err := data.GetCustomerByID(mux.Vars(r)["id"])
	if err != nil {
		log.Printf("customers: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error while looking up customer.")
		return nil, false
	}
	if customer == nil {
		respondError(w, http.StatusNotFound, "Customer not found.")
		return nil, false
	}
	if !requestIsAdmin(r) && customer.AgentID != requestAgentID(r) {
		respondError(w, http.StatusForbidden, "Customer belongs to another agent.")
		return nil, false
	}
	return customer, true
}
