// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"log"

	"github.com/playbymail/civil/stores/sqlite"
	"github.com/spf13/cobra"
)

var argsUser struct {
	paths struct {
		store string
	}
	create struct {
		email    string
		password string
	}
}

var cmdUser = &cobra.Command{
	Use:   "user",
	Short: "User management commands",
}

var cmdUserCreate = &cobra.Command{
	Use:   "create",
	Short: "Create a new user",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if ok, err := isfile(argsUser.paths.store); err != nil {
			log.Fatalf("error: store: %v\n", err)
		} else if !ok {
			log.Fatalf("error: store: invalid path\n")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		store, err := sqlite.Open(argsUser.paths.store, context.Background())
		if err != nil {
			log.Fatalf("user: create: %v\n", err)
		}
		defer store.Close()

		user, err := store.CreateUser(argsUser.create.email, argsUser.create.password)
		if err != nil {
			log.Fatalf("user: create: %v\n", err)
		}
		log.Printf("user: create: %d %s\n", user.ID, user.Email)
	},
}
