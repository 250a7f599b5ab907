// Package repository contains data access logic separated from HTTP
// handlers. This file defines sentinel errors reused across repositories so
// higher layers can distinguish failure scenarios: ErrForbidden means the
// caller does not own the resource, ErrOrderNotFound covers both a missing
// order and an order scoped to a different establishment.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrEstablishmentNotFound is returned when an establishment lookup matches
// no row.
var ErrEstablishmentNotFound = errors.New("establishment not found")

// ErrBeverageNotFound is returned when a beverage lookup matches no row.
var ErrBeverageNotFound = errors.New("beverage not found")

// ErrOrderNotFound is returned when an order lookup or scoped update matches
// no row, including updates that name an order belonging to another
// establishment.
var ErrOrderNotFound = errors.New("order not found")

// ErrEmailExists is returned when registration hits the unique email index.
var ErrEmailExists = errors.New("email already exists")
