package data

import (
	"database/sql"
	"fmt"
	"time"

	"nlt_server_go/models"
)

// CreateProvider inserts a new provider. The caller must have set ID.
func CreateProvider(provider *models.Provider) error {
	now := time.Now().UTC()
	provider.CreatedAt = now
	provider.UpdatedAt = now

	query := `INSERT INTO providers (id, name, leasing_company, is_active, created_at, updated_at)
	          VALUES (:id, :name, :leasing_company, :is_active, :created_at, :updated_at)`
	if _, err := DB.NamedExec(query, provider); err != nil {
		return fmt.Errorf("CreateProvider: failed to insert provider %s: %w", provider.Name, err)
	}
	return nil
}

// GetProviderByID returns the provider with the given id, or nil if not found.
func GetProviderByID(id string) (*models.Provider, error) {
	provider := &models.Provider{}
	err := DB.Get(provider, `SELECT * FROM providers WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetProviderByID: failed to get provider %s: %w", id, err)
	}
	return provider, nil
}

// ListProviders returns providers ordered by name. With activeOnly only
// active providers are returned.
func ListProviders(activeOnly bool) ([]models.Provider, error) {
	var providers []models.Provider
	query := `SELECT * FROM providers`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY name`
	if err := DB.Select(&providers, query); err != nil {
		return nil, fmt.Errorf("ListProviders: %w", err)
	}
	return providers, nil
}

// UpdateProvider updates name, leasing company and active flag.
func UpdateProvider(provider *models.Provider) error {
	provider.UpdatedAt = time.Now().UTC()
	query := `UPDATE providers SET
	            name = :name, leasing_company = :leasing_company,
	            is_active = :is_active, updated_at = :updated_at
	          WHERE id = :id`
	result, err := DB.NamedExec(query, provider)
	if err != nil {
		return fmt.Errorf("UpdateProvider: failed to update provider %s: %w", provider.ID, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
