// Package audit checks the text assets for cities whose address files are
// missing, empty or reference station codes that do not resolve.
package audit

import (
	"context"
	"sort"

	addrdomain "station_lookup_backend/internal/addresses/domain"
	stationdomain "station_lookup_backend/internal/stations/domain"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many city files are audited at once.
const DefaultConcurrency = 4

type AddressSource interface {
	ListCities(ctx context.Context) ([]string, error)
	ListAddresses(ctx context.Context, city string) ([]addrdomain.Address, error)
}

type StationResolver interface {
	Lookup(ctx context.Context, code string) (*stationdomain.Station, error)
}

// CityReport summarizes one city's address file.
type CityReport struct {
	City       string
	Records    int
	Streets    int
	Stations   int
	Unresolved []string
	Err        error
}

// OK reports whether the city loaded and every station code resolved.
func (r CityReport) OK() bool {
	return r.Err == nil && r.Records > 0 && len(r.Unresolved) == 0
}

// Run audits every city in the city list. Only a failure to read the city
// list is returned; per-city failures are recorded in the reports, which
// keep city list order.
func Run(ctx context.Context, addresses AddressSource, stations StationResolver, concurrency int) ([]CityReport, error) {
	cities, err := addresses.ListCities(ctx)
	if err != nil {
		return nil, err
	}
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	reports := make([]CityReport, len(cities))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, city := range cities {
		i, city := i, city
		g.Go(func() error {
			reports[i] = auditCity(gctx, addresses, stations, city)
			return nil
		})
	}
	_ = g.Wait()

	return reports, nil
}

func auditCity(ctx context.Context, addresses AddressSource, stations StationResolver, city string) CityReport {
	report := CityReport{City: city}

	list, err := addresses.ListAddresses(ctx, city)
	if err != nil {
		report.Err = err
		return report
	}
	report.Records = len(list)
	report.Streets = len(addrdomain.StreetKeys(list))

	codes := make(map[string]struct{})
	for _, a := range list {
		codes[a.Station] = struct{}{}
	}
	report.Stations = len(codes)

	for code := range codes {
		st, err := stations.Lookup(ctx, code)
		if err != nil {
			report.Err = err
			return report
		}
		if st == nil {
			report.Unresolved = append(report.Unresolved, code)
		}
	}
	sort.Strings(report.Unresolved)
	return report
}
