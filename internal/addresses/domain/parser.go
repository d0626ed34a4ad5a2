package domain

import (
	"sort"
	"strings"
	"unicode"
)

// ParseCities splits a newline-delimited city list, trimming each line and
// dropping blank ones. Order is preserved.
func ParseCities(text string) []string {
	lines := strings.Split(text, "\n")
	cities := make([]string, 0, len(lines))
	for _, line := range lines {
		if city := TrimField(line); city != "" {
			cities = append(cities, city)
		}
	}
	return cities
}

// ParseAddresses parses a tab-delimited address file into unique addresses.
// Rows without a street name or station are skipped. Two rows producing the
// same display address and station collapse into the first one seen.
func ParseAddresses(text string) []Address {
	lines := strings.Split(text, "\n")
	seen := make(map[string]struct{}, len(lines))
	result := make([]Address, 0, len(lines))

	for _, line := range lines {
		cols := strings.Split(line, "\t")
		station := column(cols, colStation)
		street := column(cols, colStreet)
		if street == "" || station == "" {
			continue
		}

		full := joinNonEmpty(
			column(cols, colHouse),
			column(cols, colPrefix),
			street,
			column(cols, colSuffix),
			column(cols, colZip),
		)

		key := full + "|" + station
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		result = append(result, Address{
			Station:     station,
			StreetKey:   strings.ToUpper(street),
			FullAddress: full + " (Station " + station + ")",
		})
	}

	return result
}

// StreetKeys returns the sorted, de-duplicated street keys of addresses.
func StreetKeys(addresses []Address) []string {
	set := make(map[string]struct{}, len(addresses))
	keys := make([]string, 0, len(addresses))
	for _, a := range addresses {
		if _, ok := set[a.StreetKey]; ok {
			continue
		}
		set[a.StreetKey] = struct{}{}
		keys = append(keys, a.StreetKey)
	}
	sort.Strings(keys)
	return keys
}

// FilterByStreet returns the addresses whose street key equals streetKey,
// in their original order.
func FilterByStreet(addresses []Address, streetKey string) []Address {
	filtered := make([]Address, 0)
	for _, a := range addresses {
		if a.StreetKey == streetKey {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// NormalizeStreetKey converts user input into street key form.
func NormalizeStreetKey(street string) string {
	return strings.ToUpper(TrimField(street))
}

// TrimField trims surrounding whitespace and byte order marks, so a file
// saved with a UTF-8 BOM parses like one without.
func TrimField(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

func column(cols []string, idx int) string {
	if idx >= len(cols) {
		return ""
	}
	return TrimField(cols[idx])
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
