// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package server implements the HTTP server for the JSON API. Markup
// is compiled on the way out; the store only ever sees raw source.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/playbymail/civil/stores/sqlite"
)

type Server struct {
	http.Server
	scheme     string
	host       string
	port       string
	mux        *http.ServeMux
	store      *sqlite.Store
	sessionTTL time.Duration
}

func New(options ...Option) (*Server, error) {
	s := &Server{
		scheme:     "http",
		host:       "localhost",
		port:       "3000",
		mux:        http.NewServeMux(), // default mux, no routes
		sessionTTL: 14 * 24 * time.Hour,
	}

	s.IdleTimeout = 10 * time.Second
	s.ReadTimeout = 5 * time.Second
	s.WriteTimeout = 10 * time.Second
	s.MaxHeaderBytes = 1 << 20

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	s.Handler = s.mux
	s.routes()

	return s, nil
}

func (s *Server) BaseURL() string {
	return fmt.Sprintf("%s://%s", s.scheme, s.Addr)
}

func (s *Server) Router() http.Handler {
	return s.mux
}
