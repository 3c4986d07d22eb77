// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"errors"
	"strconv"
	"strings"
)

// ErrBadID is returned by ParseID for values that are not positive integers.
var ErrBadID = errors.New("not a valid id")

// ParseID parses a path or query parameter as a positive integer id.
//
// Example:
//
//	id, err := utils.ParseID("42") // 42, nil
//	id, err = utils.ParseID("x")   // 0, ErrBadID
//	id, err = utils.ParseID("-1")  // 0, ErrBadID
func ParseID(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrBadID
	}
	return n, nil
}

// OptionalID parses an optional id parameter, returning 0 when the value is
// empty or unparseable. Repository queries treat 0 as "no user supplied"
// (ids are assigned from 1).
func OptionalID(s string) int64 {
	n, err := ParseID(s)
	if err != nil {
		return 0
	}
	return n
}

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
