// Package model provides the data structures for produced workflows: a named
// tree of triggers and actions with per-run sequence numbers, free-text
// documentation and configuration bags. Instances are created fresh per
// mapping run and owned by the caller.
package model
