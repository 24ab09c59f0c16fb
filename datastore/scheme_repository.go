package datastore

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// SchemeRepository is a source of raw hex rows for palette.Repository.Load.
type SchemeRepository interface {
	GetAll() ([][]string, error)
	Append(rows [][]string) error
	Count() (int, error)
}

type SchemeDatabase struct {
	database *sql.DB
}

func NewSchemeDatabase(db *sql.DB) (SchemeDatabase, error) {
	if db == nil {
		return SchemeDatabase{}, fmt.Errorf("scheme database requires a connection")
	}
	return SchemeDatabase{database: db}, nil
}

// GetAll returns every stored scheme in insertion order
func (sdb SchemeDatabase) GetAll() ([][]string, error) {
	sqlStatement := `
		SELECT colors
		FROM color_scheme
		ORDER BY position ASC`

	rows, err := sdb.database.Query(sqlStatement)
	if err != nil {
		return nil, fmt.Errorf("failed to query color schemes: %w", err)
	}
	defer rows.Close()

	schemes := [][]string{}
	for rows.Next() {
		var colors []string
		if err := rows.Scan(pq.Array(&colors)); err != nil {
			return nil, fmt.Errorf("failed to scan color scheme: %w", err)
		}
		schemes = append(schemes, colors)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schemes, nil
}

// Append stores rows after the existing ones in a single transaction
func (sdb SchemeDatabase) Append(rows [][]string) error {
	tx, err := sdb.database.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var next int
	err = tx.QueryRow(`SELECT COALESCE(MAX(position), 0) FROM color_scheme`).Scan(&next)
	if err != nil {
		return fmt.Errorf("failed to read scheme position: %w", err)
	}

	sqlStatement := `
		INSERT INTO color_scheme (position, colors)
		VALUES ($1, $2)`

	for _, colors := range rows {
		next++
		if _, err := tx.Exec(sqlStatement, next, pq.Array(colors)); err != nil {
			return fmt.Errorf("failed to insert color scheme: %w", err)
		}
	}

	return tx.Commit()
}

func (sdb SchemeDatabase) Count() (int, error) {
	var count int
	err := sdb.database.QueryRow(`SELECT COUNT(*) FROM color_scheme`).Scan(&count)
	switch err {
	case sql.ErrNoRows:
		return 0, NoRowsError{true, err}
	case nil:
		return count, nil
	default:
		return 0, err
	}
}
