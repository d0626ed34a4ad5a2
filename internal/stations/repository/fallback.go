// Package repository loads the named fallback station table.
package repository

import (
	"fmt"
	"os"
	"strings"

	"station_lookup_backend/internal/stations/domain"

	"gopkg.in/yaml.v3"
)

// fallbackFile is the YAML layout of STATION_FALLBACK_FILE:
//
//	stations:
//	  - code: VEN
//	    name: Ventura Station
//	    phone: 805-339-4393
type fallbackFile struct {
	Stations []domain.FallbackEntry `yaml:"stations"`
}

// LoadFallback returns the built-in fallback table followed by the entries
// of the YAML file at path, so file entries override built-ins. An empty
// path returns the built-in table.
func LoadFallback(path string) ([]domain.FallbackEntry, error) {
	entries := domain.DefaultFallback()
	if path == "" {
		return entries, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read station fallback file: %w", err)
	}

	var file fallbackFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse station fallback file: %w", err)
	}

	for i, e := range file.Stations {
		code := strings.TrimSpace(e.Code)
		if code == "" || e.Phone == "" {
			return nil, fmt.Errorf("station fallback entry %d: code and phone are required", i)
		}
		if !domain.IsValidCode(code) {
			return nil, fmt.Errorf("station fallback entry %d: code %q must be 1-10 letters or digits", i, e.Code)
		}
		if domain.IsNumericCode(code) {
			return nil, fmt.Errorf("station fallback entry %d: code %q belongs to the directory", i, e.Code)
		}
	}

	return append(entries, file.Stations...), nil
}
