// Package domain resolves station codes to contact information using the
// station phone directory and a table of named fallback stations.
package domain

import (
	"regexp"
	"strings"
)

// Station is the contact information for a service station.
type Station struct {
	Number    string
	Name      string
	Phone     string
	PhoneE164 string
}

// FallbackEntry maps a named station code to fixed contact details.
type FallbackEntry struct {
	Code  string `yaml:"code"`
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

// Directory columns (tab-delimited, code in column 0).
const (
	dirColName  = 1
	dirColPhone = 5
)

const byteOrderMark = "\uFEFF"

var (
	numericCode = regexp.MustCompile(`^\d{2}$`)
	validCode   = regexp.MustCompile(`^[A-Za-z0-9]{1,10}$`)
)

// DefaultFallback returns the built-in named stations.
func DefaultFallback() []FallbackEntry {
	return []FallbackEntry{
		{Code: "VEN", Name: "Ventura Station", Phone: "805-339-4393"},
		{Code: "OXD", Name: "Oxnard Station", Phone: "805-385-7722"},
		{Code: "FIL", Name: "Fillmore Station", Phone: "805-524-0586"},
	}
}

// Resolver implements the station resolution order: a two-digit code is
// looked up in the directory first, then the upper-cased code is looked up
// in the fallback table.
type Resolver struct {
	fallback map[string]FallbackEntry
}

// NewResolver creates a resolver over the given fallback entries. Later
// entries override earlier ones with the same code.
func NewResolver(entries []FallbackEntry) *Resolver {
	fallback := make(map[string]FallbackEntry, len(entries))
	for _, e := range entries {
		code := strings.ToUpper(strings.TrimSpace(e.Code))
		if code == "" {
			continue
		}
		e.Code = code
		fallback[code] = e
	}
	return &Resolver{fallback: fallback}
}

// Resolve returns the station for code, or nil when neither the directory
// nor the fallback table knows it.
func (r *Resolver) Resolve(directory, code string) *Station {
	if numericCode.MatchString(code) {
		if st := lookupDirectory(directory, code); st != nil {
			return st
		}
	}

	if e, ok := r.fallback[strings.ToUpper(code)]; ok {
		return &Station{Number: e.Code, Name: e.Name, Phone: e.Phone}
	}
	return nil
}

// IsValidCode reports whether code uses only the characters accepted for
// station codes: 1 to 10 ASCII letters or digits.
func IsValidCode(code string) bool {
	return validCode.MatchString(code)
}

// IsNumericCode reports whether code is a two-digit directory code.
func IsNumericCode(code string) bool {
	return numericCode.MatchString(code)
}

func lookupDirectory(directory, code string) *Station {
	prefix := code + "\t"
	for _, line := range strings.Split(directory, "\n") {
		line = strings.TrimPrefix(line, byteOrderMark)
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		cols := strings.Split(line, "\t")
		return &Station{
			Number: code,
			Name:   column(cols, dirColName),
			Phone:  column(cols, dirColPhone),
		}
	}
	return nil
}

func column(cols []string, idx int) string {
	if idx >= len(cols) {
		return ""
	}
	return strings.TrimSpace(strings.Trim(cols[idx], byteOrderMark))
}
