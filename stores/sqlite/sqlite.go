// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package sqlite implements the Sqlite database store.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"log"
	"os"

	"github.com/playbymail/civil/cerrs"
	_ "modernc.org/sqlite"
)

var (
	//go:embed schema.sql
	schemaDDL string
)

// Store wraps the database handle. The context is carried in the
// struct so that every query issued through the store shares the
// caller's lifetime.
type Store struct {
	db  *sql.DB
	ctx context.Context
}

// Create creates a new store.
// Returns an error if the database file already exists, unless force
// is set, in which case the existing database is removed first.
func Create(path string, force bool, ctx context.Context) (*Store, error) {
	if sb, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("db: create: %q: %s\n", path, err)
			return nil, err
		}
	} else if sb.IsDir() {
		log.Printf("db: create: %q: is a directory\n", path)
		return nil, cerrs.ErrInvalidPath
	} else if !force {
		log.Printf("db: create: %q: %s\n", path, "database already exists")
		return nil, cerrs.ErrDatabaseExists
	} else if err := os.Remove(path); err != nil {
		return nil, err
	}

	log.Printf("db: create: path %s\n", path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("db: create: %v\n", err)
		return nil, err
	}

	if err := enableForeignKeys(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// create the schema
	if _, err := db.Exec(schemaDDL); err != nil {
		log.Printf("db: create: failed to initialize schema\n")
		log.Printf("db: create: %v\n", err)
		_ = db.Close()
		return nil, errors.Join(cerrs.ErrCreateSchema, err)
	}

	log.Printf("db: create: created %s\n", path)

	return &Store{db: db, ctx: ctx}, nil
}

// Open opens an existing store.
// Returns an error if the database file does not exist or is not a
// regular file. Caller must call Close() when done.
func Open(path string, ctx context.Context) (*Store, error) {
	if sb, err := os.Stat(path); err != nil {
		log.Printf("db: open: %q: %v\n", path, err)
		return nil, err
	} else if sb.IsDir() || !sb.Mode().IsRegular() {
		log.Printf("db: open: %q: %s\n", path, "not a database")
		return nil, cerrs.ErrInvalidPath
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("db: open: %s: %v\n", path, err)
		return nil, err
	}

	if err := enableForeignKeys(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, ctx: ctx}, nil
}

func (s *Store) Close() error {
	var err error
	if s != nil && s.db != nil {
		err = s.db.Close()
		s.db = nil
	}
	return err
}

// enableForeignKeys turns on foreign key enforcement and returns an
// error if the pragma fails. It does not read the setting back.
func enableForeignKeys(db *sql.DB) error {
	checkPragma := "PRAGMA" + " foreign_keys = ON"
	if rslt, err := db.Exec(checkPragma); err != nil {
		log.Printf("db: foreign keys are disabled\n")
		return cerrs.ErrForeignKeysDisabled
	} else if rslt == nil {
		log.Printf("db: foreign keys pragma failed\n")
		return cerrs.ErrPragmaReturnedNil
	}
	return nil
}
