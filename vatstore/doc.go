// Package vatstore persists combine tables (Value Attribute Tables) in SQLite.
//
// Tables are stored by name; Save replaces an existing table of the same name in
// one transaction and Load rebuilds it through combine.NewTable, so a stored
// table is re-validated on the way back in.
//
// The driver is modernc.org/sqlite (pure Go, registered as "sqlite").
package vatstore
