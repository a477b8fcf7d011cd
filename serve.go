// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"log"
	"time"

	"github.com/playbymail/civil/internal/server"
	"github.com/playbymail/civil/stores/sqlite"
	"github.com/spf13/cobra"
)

var argsServe struct {
	paths struct {
		store string
	}
	server struct {
		host string
		port string
	}
}

var cmdServe = &cobra.Command{
	Use:   "serve",
	Short: "serve the web application",
	Long:  `Serve the JSON API for decks, notes and reviews.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if argsServe.paths.store == "" {
			log.Fatalf("error: store: path is required\n")
		} else if ok, err := isfile(argsServe.paths.store); err != nil {
			log.Printf("serve: store: %s\n", argsServe.paths.store)
			log.Fatalf("error: store: %v\n", err)
		} else if !ok {
			log.Printf("serve: store: %s\n", argsServe.paths.store)
			log.Fatalf("error: store: invalid path\n")
		}
		if argsServe.server.host == "" {
			argsServe.server.host = globalConfig.Server.Host
		}
		if argsServe.server.port == "" {
			argsServe.server.port = globalConfig.Server.Port
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Printf("store: %s\n", argsServe.paths.store)

		store, err := sqlite.Open(argsServe.paths.store, context.Background())
		if err != nil {
			log.Printf("error: %v\n", err)
			return
		}
		defer store.Close()

		srvOptions := server.Options{
			server.WithStore(store),
			server.WithHost(argsServe.server.host),
			server.WithPort(argsServe.server.port),
			server.WithSessionTTL(time.Duration(globalConfig.Server.SessionTTLHours) * time.Hour),
		}
		s, err := server.New(srvOptions...)
		if err != nil {
			log.Printf("error: %v\n", err)
			return
		}
		log.Printf("serve: listening on %s\n", s.BaseURL())
		log.Fatal(s.ListenAndServe())
	},
}
