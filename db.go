// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"log"

	"github.com/playbymail/civil/stores/sqlite"
	"github.com/spf13/cobra"
)

var argsDb struct {
	paths struct {
		store string
	}
	create struct {
		force bool // if true, overwrite existing database
	}
}

var cmdDb = &cobra.Command{
	Use:   "db",
	Short: "Database management commands",
}

var cmdDbCreate = &cobra.Command{
	Use:   "create",
	Short: "Create and initialize the database",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := sqlite.Create(argsDb.paths.store, argsDb.create.force, context.Background())
		if err != nil {
			log.Fatalf("db: create: %v\n", err)
		}
		defer store.Close()
		log.Printf("db: create: %s\n", argsDb.paths.store)
	},
}
