// Package history publishes stored audit runs to a MySQL defect log.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"webaudit/internal/config"
)

// DatabaseManager manages the defect log database
type DatabaseManager struct {
	config *config.Config
}

// NewDatabaseManager creates a new DatabaseManager
func NewDatabaseManager(cfg *config.Config) *DatabaseManager {
	return &DatabaseManager{config: cfg}
}

// Open connects to the MySQL server using credentials from .env or the
// environment. No database is selected; EnsureSchema creates it if needed.
func (dm *DatabaseManager) Open() (*sql.DB, error) {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(".env")

	db, err := sql.Open("mysql", serverDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}

	return db, nil
}

// EnsureSchema checks that the defect log database and its tables exist
// and creates whatever is missing
func (dm *DatabaseManager) EnsureSchema(ctx context.Context, db *sql.DB) error {
	dbName := dm.config.GetDatabaseName()
	if !isValidDatabaseName(dbName) {
		return fmt.Errorf("invalid database name: %s", dbName)
	}

	exists, err := dm.databaseExists(ctx, db, dbName)
	if err != nil {
		return fmt.Errorf("failed to check database %s: %w", dbName, err)
	}

	if !exists {
		query := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName)
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create database %s: %w", dbName, err)
		}
	}

	for _, ddl := range tableDDL {
		if _, err := db.ExecContext(ctx, fmt.Sprintf(ddl, dbName)); err != nil {
			return fmt.Errorf("failed to create tables in %s: %w", dbName, err)
		}
	}

	return nil
}

// databaseExists checks if a database exists
func (dm *DatabaseManager) databaseExists(ctx context.Context, db *sql.DB, dbName string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	err := db.QueryRowContext(ctx, query, dbName).Scan(&exists)
	return exists, err
}

// serverDSN builds a server-level DSN from the environment, falling back
// to a local root connection
func serverDSN() string {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("DB_PASSWORD")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/", dbUser, dbPassword, dbHost, dbPort)
}

// isValidDatabaseName validates database name (basic check)
func isValidDatabaseName(name string) bool {
	// Only allow alphanumeric, underscore, and specific patterns
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	// Check for SQL injection patterns
	invalidChars := []string{"'", "\"", ";", "--", "/*", "*/", "`", "DROP", "DELETE", "TRUNCATE"}
	upperName := strings.ToUpper(name)
	for _, char := range invalidChars {
		if strings.Contains(upperName, char) {
			return false
		}
	}
	return true
}

// tableDDL holds the defect log schema, parameterized on the database name.
// Statements run through fmt.Sprintf after the name passed validation.
var tableDDL = []string{
	"CREATE TABLE IF NOT EXISTS `%s`.audit_runs (" +
		" run_id VARCHAR(36) NOT NULL PRIMARY KEY," +
		" target_url VARCHAR(2048) NOT NULL," +
		" browser VARCHAR(64) NOT NULL," +
		" platform VARCHAR(32) NOT NULL," +
		" viewports VARCHAR(255) NOT NULL," +
		" checks_run INT NOT NULL," +
		" checks_errored INT NOT NULL," +
		" total_findings INT NOT NULL," +
		" high_count INT NOT NULL," +
		" medium_count INT NOT NULL," +
		" low_count INT NOT NULL," +
		" stability VARCHAR(32) NOT NULL," +
		" recommendation VARCHAR(255) NOT NULL," +
		" duration_seconds DOUBLE NOT NULL," +
		" workers INT NOT NULL," +
		" run_at VARCHAR(40) NOT NULL," +
		" created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP" +
		")",
	"CREATE TABLE IF NOT EXISTS `%s`.audit_findings (" +
		" id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY," +
		" run_id VARCHAR(36) NOT NULL," +
		" check_id VARCHAR(64) NOT NULL," +
		" bug_id VARCHAR(16) NOT NULL," +
		" title VARCHAR(255) NOT NULL," +
		" severity VARCHAR(16) NOT NULL," +
		" viewport VARCHAR(32) NOT NULL DEFAULT ''," +
		" steps TEXT," +
		" expected TEXT," +
		" actual TEXT," +
		" screenshot VARCHAR(255) NOT NULL DEFAULT ''," +
		" status VARCHAR(16) NOT NULL," +
		" environment VARCHAR(64) NOT NULL DEFAULT ''," +
		" resolved TINYINT(1) NOT NULL DEFAULT 0," +
		" INDEX idx_audit_findings_run (run_id)" +
		")",
}
