// SPDX-License-Identifier: MIT

package vatstore

import "errors"

var (
	// ErrNotFound indicates no table is stored under the requested name.
	ErrNotFound = errors.New("vatstore: table not found")

	// ErrEmptyName indicates an empty table name.
	ErrEmptyName = errors.New("vatstore: table name must not be empty")

	// ErrNilTable indicates Save was called with a nil table.
	ErrNilTable = errors.New("vatstore: nil table")
)
