// Package scc types, options, and sentinel errors.
package scc

import "errors"

// Sentinel errors for SCC operations.
var (
	// ErrGraphNil indicates a nil graph was passed.
	ErrGraphNil = errors.New("scc: graph is nil")

	// ErrToolkitNil indicates a nil toolkit was passed.
	ErrToolkitNil = errors.New("scc: toolkit is nil")

	// ErrDanglingEdge indicates an edge whose endpoint is absent from the
	// source graph's vertex set, discovered while building the transpose.
	ErrDanglingEdge = errors.New("scc: edge endpoint not in graph")
)

// Direction selects ascending or descending visitation-time order.
type Direction int

const (
	// Ascending orders vertices from earliest to latest finish time.
	Ascending Direction = iota
	// Descending orders vertices from latest to earliest finish time.
	Descending
)
