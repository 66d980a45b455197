// File: store.go
// Title: Global Configuration Store
// Description: Holds the current GlobalConfig and publishes immutable
//              snapshots to readers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package config

import (
	"sync/atomic"

	"github.com/msto63/ztk/foundation/core/log"
)

// Store holds a GlobalConfig. Readers always observe a complete snapshot.
// Configure is a read-merge-write and expects a single writer at a time;
// concurrent writers must synchronize externally.
type Store struct {
	current atomic.Pointer[GlobalConfig]
}

// NewStore creates an empty store
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&GlobalConfig{})
	return s
}

// Configure shallow-merges partial into the store. Top-level fields that
// are non-nil in partial replace the stored field; nested values are not
// merged. No validation is performed.
func (s *Store) Configure(partial GlobalConfig) {
	next := s.current.Load().merge(partial.Clone())
	s.current.Store(&next)

	log.Named("config").Debug("global configuration updated", log.Fields{
		"fields": configuredFields(partial),
	})
}

// Current returns a snapshot of the stored configuration. Mutating the
// snapshot does not affect the store.
func (s *Store) Current() GlobalConfig {
	return s.current.Load().Clone()
}

func configuredFields(c GlobalConfig) []string {
	var fields []string
	if c.CryptoSecret != nil {
		fields = append(fields, "cryptoSecret")
	}
	if c.FileUpload != nil {
		fields = append(fields, "fileUpload")
	}
	if c.DateTime != nil {
		fields = append(fields, "dateTime")
	}
	if c.Currency != nil {
		fields = append(fields, "currency")
	}
	if c.ErrorMessages != nil {
		fields = append(fields, "errorMessages")
	}
	if c.Validation != nil {
		fields = append(fields, "validation")
	}
	return fields
}

var defaultStore atomic.Pointer[Store]

func init() {
	defaultStore.Store(NewStore())
}

// Default returns the process default store
func Default() *Store {
	return defaultStore.Load()
}

// SetDefault installs s as the process default store and returns the
// previous one. Tests use it to isolate global configuration.
func SetDefault(s *Store) *Store {
	if s == nil {
		s = NewStore()
	}
	return defaultStore.Swap(s)
}

// Configure merges partial into the default store
func Configure(partial GlobalConfig) {
	Default().Configure(partial)
}

// Current returns a snapshot of the default store
func Current() GlobalConfig {
	return Default().Current()
}
