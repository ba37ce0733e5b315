// Package patch applies partial updates described by an explicit table of
// updatable fields. Each field knows whether the request carries it and how
// to copy it onto the loaded record; nothing is spliced into SQL.
package patch

import (
	"errors"
	"fmt"
)

var ErrNoFields = errors.New("no fields to update")

type Field[Req any, Rec any] struct {
	Name    string
	Present func(req *Req) bool
	Apply   func(req *Req, rec *Rec) error
}

type Set[Req any, Rec any] []Field[Req, Rec]

// Requested returns the names of the fields present in req, in table order.
func (s Set[Req, Rec]) Requested(req *Req) []string {
	var names []string
	for _, f := range s {
		if f.Present(req) {
			names = append(names, f.Name)
		}
	}
	return names
}

// Apply copies every present field onto rec, stopping at the first rejection.
func (s Set[Req, Rec]) Apply(req *Req, rec *Rec) error {
	applied := 0
	for _, f := range s {
		if !f.Present(req) {
			continue
		}
		if err := f.Apply(req, rec); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
		applied++
	}
	if applied == 0 {
		return ErrNoFields
	}
	return nil
}
