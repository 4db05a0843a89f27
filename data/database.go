package data

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver, imported for its side effect of registering itself
)

// DB is the shared connection pool for the portal database.
var DB *sqlx.DB

// InitDB opens the SQLite database at the given path and applies the schema.
func InitDB(path string) error {
	var err error
	DB, err = sqlx.Connect("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err = DB.Exec(GetSchema()); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	log.Printf("database ready at %s", path)
	return nil
}

// GetDB returns the current database connection.
func GetDB() *sqlx.DB {
	return DB
}
