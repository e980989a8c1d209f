// Package database хранилище распознанных записей поверх SQLite.
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBConfig конфигурация подключения к БД
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB обертка для работы с базой данных реестра
type DB struct {
	conn *sql.DB
}

// NewDB создает новое подключение к базе данных реестра
func NewDB(dbPath string) (*DB, error) {
	config := DBConfig{}

	// Для in-memory SQLite требуется ровно одно соединение, иначе каждое
	// новое соединение получает пустую БД без таблиц
	if dbPath == ":memory:" {
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}

	return NewDBWithConfig(dbPath, config)
}

// NewDBWithConfig создает новое подключение к базе данных с конфигурацией
func NewDBWithConfig(dbPath string, config DBConfig) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite плохо справляется с большим количеством одновременных
	// соединений, ограничиваем пул
	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(10)
	}
	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(3)
	}
	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.createTables(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// Close закрывает подключение к базе данных
func (db *DB) Close() error {
	return db.conn.Close()
}

// createTables создает таблицы реестра, если их еще нет
func (db *DB) createTables() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS drivers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			birth_date TEXT,
			birth_place TEXT,
			citizenship TEXT,
			residence_address TEXT,
			passport_number TEXT,
			passport_issued_by TEXT,
			passport_issue_date TEXT,
			passport_dept_code TEXT,
			license_number TEXT,
			license_issue_date TEXT,
			phone TEXT,
			vehicle_brand TEXT,
			vehicle_plate TEXT,
			trailer_brand TEXT,
			trailer_plate TEXT,
			carrier TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(name)
		)`,
		`CREATE TABLE IF NOT EXISTS organizations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			org_type TEXT,
			org_name TEXT NOT NULL,
			org_short_name TEXT,
			inn TEXT,
			contact_phone TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(kind, org_name)
		)`,
		`CREATE TABLE IF NOT EXISTS transportations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			driver_name TEXT,
			client_firm TEXT,
			route TEXT,
			price TEXT,
			payment TEXT,
			haul_date TEXT,
			note TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_drivers_name ON drivers(name)`,
		`CREATE INDEX IF NOT EXISTS idx_organizations_inn ON organizations(inn)`,
		`CREATE INDEX IF NOT EXISTS idx_transportations_haul_date ON transportations(haul_date)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	return nil
}

func nullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
