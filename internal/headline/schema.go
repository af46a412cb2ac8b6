// internal/headline/schema.go
//
// DDL for the `schlagzeilen` table, one variant per supported driver.
//
// Schema reference
//
//	schlagzeilen (
//	    id           auto-increment primary key,
//	    schlagzeile  text of the headline, NOT NULL,
//	    inland       boolean category flag, NOT NULL
//	)
//
// Notes
// -----
// • Driver names match database.Driver* constants.
// • IF NOT EXISTS keeps Migrate idempotent across restarts.
package headline

import "fmt"

// Migrations returns the statements that create the headline schema for
// driver.  Unknown drivers yield an error rather than guessed SQL.
func Migrations(driver string) ([]string, error) {
	switch driver {
	case "mysql":
		return []string{`CREATE TABLE IF NOT EXISTS schlagzeilen (
    id          BIGINT       NOT NULL AUTO_INCREMENT PRIMARY KEY,
    schlagzeile VARCHAR(255) NOT NULL,
    inland      BOOLEAN      NOT NULL DEFAULT FALSE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`}, nil
	case "pgx":
		return []string{`CREATE TABLE IF NOT EXISTS schlagzeilen (
    id          BIGSERIAL    PRIMARY KEY,
    schlagzeile VARCHAR(255) NOT NULL,
    inland      BOOLEAN      NOT NULL DEFAULT FALSE
)`}, nil
	case "sqlite":
		return []string{`CREATE TABLE IF NOT EXISTS schlagzeilen (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    schlagzeile TEXT    NOT NULL,
    inland      BOOLEAN NOT NULL DEFAULT 0
)`}, nil
	default:
		return nil, fmt.Errorf("headline schema: unsupported driver %q", driver)
	}
}
