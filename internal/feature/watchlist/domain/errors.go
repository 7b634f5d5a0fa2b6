// Package domain defines domain-level errors for the watchlist feature.
package domain

import "errors"

// ErrAlreadyInList indicates an add for a (user, kind, movie) triple that
// is already present. Adding is a set-add: the duplicate is reported as a
// conflict instead of creating a second row. Removal of an absent entry is
// deliberately NOT an error; that asymmetry is part of the contract and
// client toggle logic relies on it.
var ErrAlreadyInList = errors.New("movie already in list")
