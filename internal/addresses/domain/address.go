// Package domain holds the address records parsed from the per-city address
// files and the pure functions that derive street lists from them.
package domain

// Address is one unique address in a city's address file.
type Address struct {
	Station     string
	StreetKey   string
	FullAddress string
}

// Column offsets in a tab-delimited address row.
const (
	colStation = 1
	colZip     = 3
	colHouse   = 4
	colPrefix  = 5
	colStreet  = 6
	colSuffix  = 8
)
