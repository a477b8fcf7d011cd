// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package server

import (
	"net"
	"time"

	"github.com/playbymail/civil/stores/sqlite"
)

type Options []Option
type Option func(*Server) error

func WithHost(host string) Option {
	return func(s *Server) error {
		s.host = host
		s.Addr = net.JoinHostPort(s.host, s.port)
		return nil
	}
}

func WithPort(port string) Option {
	return func(s *Server) error {
		s.port = port
		s.Addr = net.JoinHostPort(s.host, s.port)
		return nil
	}
}

func WithStore(store *sqlite.Store) Option {
	return func(s *Server) error {
		s.store = store
		return nil
	}
}

func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) error {
		s.sessionTTL = ttl
		return nil
	}
}
