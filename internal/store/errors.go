// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "errors"

// Errors returned by the catalog and hero stores. Handlers map them to
// HTTP status codes with errors.Is.
var (
	// ErrNotFound means the id did not match any record.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a category with the same derived id already exists.
	ErrConflict = errors.New("already exists")
	// ErrCategoryNotFound means a product referenced a missing category.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInvalid means an input value was rejected.
	ErrInvalid = errors.New("invalid input")
)
