package database

import (
	"database/sql"
	"sync"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/ledgerline/ledgerline/config"
)

// Package-level singleton so every caller shares one connection pool.
var instance *Datasource
var once sync.Once

type Datasource struct {
	Conn *sql.DB
}

func NewDataSource(configuration *config.Configuration) (IDataSource, error) {
	con, err := GetDBConnection(configuration)
	if err != nil {
		return nil, err
	}
	return con, nil
}

// GetDBConnection provides a global access point to the instance and initializes it if it's not already.
func GetDBConnection(configuration *config.Configuration) (*Datasource, error) {
	var err error
	once.Do(func() {
		con, errConn := ConnectDB(configuration.DataSource.Dns)
		if errConn != nil {
			err = errConn
			return
		}
		instance = &Datasource{Conn: con}
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func ConnectDB(dns string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dns)
	if err != nil {
		return nil, errors.Wrap(err, "opening postgres connection")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "pinging postgres")
	}
	if err := createCustomerTable(db); err != nil {
		return nil, err
	}
	if err := createAdjustmentTable(db); err != nil {
		return nil, err
	}
	if err := createSaleTable(db); err != nil {
		return nil, err
	}
	if err := createPayoutTable(db); err != nil {
		return nil, err
	}
	return db, nil
}

// createCustomerTable creates a PostgreSQL table for the Customer struct
func createCustomerTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			customer_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			surname TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	return errors.Wrap(err, "creating customers table")
}

// createAdjustmentTable creates a PostgreSQL table for the Adjustment struct.
// customer_id is nullable: a NULL scope means the adjustment applies globally.
func createAdjustmentTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS adjustments (
			id SERIAL PRIMARY KEY,
			adjustment_id TEXT NOT NULL UNIQUE,
			amount DOUBLE PRECISION NOT NULL,
			reason TEXT,
			customer_id TEXT REFERENCES customers(customer_id),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	return errors.Wrap(err, "creating adjustments table")
}

// createSaleTable creates a PostgreSQL table for the Sale struct
func createSaleTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS sales (
			id SERIAL PRIMARY KEY,
			sale_id TEXT NOT NULL UNIQUE,
			amount DOUBLE PRECISION NOT NULL CHECK (amount > 0),
			status TEXT NOT NULL CHECK (status IN ('active', 'pending', 'incomplete', 'disputed', 'completed')),
			customer_id TEXT NOT NULL REFERENCES customers(customer_id),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	return errors.Wrap(err, "creating sales table")
}

// createPayoutTable creates a PostgreSQL table for the Payout struct
func createPayoutTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS payouts (
			id SERIAL PRIMARY KEY,
			payout_id TEXT NOT NULL UNIQUE,
			amount DOUBLE PRECISION NOT NULL CHECK (amount > 0),
			status TEXT NOT NULL CHECK (status IN ('completed', 'pending', 'failed')),
			sale_id TEXT NOT NULL REFERENCES sales(sale_id),
			adjustment_id TEXT REFERENCES adjustments(adjustment_id),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	return errors.Wrap(err, "creating payouts table")
}
