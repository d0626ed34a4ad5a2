package domain

import (
	"context"
	"errors"
	"reflect"
	"testing"

	addrdomain "station_lookup_backend/internal/addresses/domain"
	stationdomain "station_lookup_backend/internal/stations/domain"
	"station_lookup_backend/platform/apperr"
)

type fakeAddresses struct {
	cities    []string
	addresses map[string][]addrdomain.Address
	err       error
}

func (f *fakeAddresses) ListCities(context.Context) ([]string, error) {
	return f.cities, f.err
}

func (f *fakeAddresses) ListAddresses(_ context.Context, city string) ([]addrdomain.Address, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.addresses[city], nil
}

type fakeStations struct {
	lookups []string
}

func (f *fakeStations) Lookup(_ context.Context, code string) (*stationdomain.Station, error) {
	f.lookups = append(f.lookups, code)
	if code == "05" {
		return &stationdomain.Station{Number: "05", Name: "Station Five", Phone: "805-000-0005"}, nil
	}
	return nil, nil
}

func newFakes() (*fakeAddresses, *fakeStations) {
	return &fakeAddresses{
		cities: []string{"Ventura", "Ojai"},
		addresses: map[string][]addrdomain.Address{
			"Ventura": {
				{Station: "05", StreetKey: "MAIN", FullAddress: "100 Main St 93001 (Station 05)"},
				{Station: "05", StreetKey: "ANCHORS", FullAddress: "1 Anchors Way 93001 (Station 05)"},
				{Station: "77", StreetKey: "MAIN", FullAddress: "300 Main St 93001 (Station 77)"},
			},
		},
	}, &fakeStations{}
}

func TestCascade(t *testing.T) {
	addrs, stations := newFakes()
	c := NewController(addrs, stations)
	ctx := context.Background()
	st := &State{}

	if err := c.Init(ctx, st); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !reflect.DeepEqual(st.Cities, []string{"Ventura", "Ojai"}) {
		t.Fatalf("unexpected cities %v", st.Cities)
	}

	if err := c.SelectCity(ctx, st, "Ventura"); err != nil {
		t.Fatalf("select city: %v", err)
	}
	if !reflect.DeepEqual(st.Streets, []string{"ANCHORS", "MAIN"}) {
		t.Fatalf("unexpected streets %v", st.Streets)
	}

	c.SelectStreet(st, "main")
	if st.Street != "MAIN" || len(st.StreetAddresses) != 2 {
		t.Fatalf("unexpected street state %q %+v", st.Street, st.StreetAddresses)
	}

	if err := c.SelectAddress(ctx, st, "100 Main St 93001 (Station 05)"); err != nil {
		t.Fatalf("select address: %v", err)
	}
	if st.Address == nil || st.Station == nil || st.Station.Phone != "805-000-0005" {
		t.Fatalf("expected station resolved, got %+v %+v", st.Address, st.Station)
	}

	c.SelectStreet(st, "ANCHORS")
	if st.Address != nil || st.Station != nil {
		t.Fatal("selecting a street must reset address and station")
	}
	if st.City != "Ventura" || len(st.Streets) != 2 {
		t.Fatal("selecting a street must not touch upstream state")
	}
}

func TestSelectCityResetsDownstream(t *testing.T) {
	addrs, stations := newFakes()
	c := NewController(addrs, stations)
	ctx := context.Background()
	st := &State{}

	_ = c.SelectCity(ctx, st, "Ventura")
	c.SelectStreet(st, "MAIN")
	_ = c.SelectAddress(ctx, st, "100 Main St 93001 (Station 05)")

	if err := c.SelectCity(ctx, st, "Ojai"); err != nil {
		t.Fatalf("select city: %v", err)
	}
	if st.Street != "" || st.StreetAddresses != nil || st.Address != nil || st.Station != nil {
		t.Fatalf("expected downstream cleared, got %+v", st)
	}
	if len(st.Streets) != 0 {
		t.Fatalf("expected no streets for Ojai, got %v", st.Streets)
	}
}

func TestSelectCityLoadFailureLeavesListsEmpty(t *testing.T) {
	addrs, stations := newFakes()
	c := NewController(addrs, stations)
	ctx := context.Background()
	st := &State{}
	_ = c.SelectCity(ctx, st, "Ventura")

	addrs.err = errors.New("boom")
	if err := c.SelectCity(ctx, st, "Ventura"); err == nil {
		t.Fatal("expected load error")
	}
	if st.City != "Ventura" || st.Addresses != nil || st.Streets != nil {
		t.Fatalf("expected empty lists after failure, got %+v", st)
	}
}

func TestSelectAddressUnresolvedStation(t *testing.T) {
	addrs, stations := newFakes()
	c := NewController(addrs, stations)
	ctx := context.Background()
	st := &State{}
	_ = c.SelectCity(ctx, st, "Ventura")
	c.SelectStreet(st, "MAIN")

	if err := c.SelectAddress(ctx, st, "300 Main St 93001 (Station 77)"); err != nil {
		t.Fatalf("select address: %v", err)
	}
	if st.Address == nil || st.Station != nil {
		t.Fatalf("expected address with nil station, got %+v %+v", st.Address, st.Station)
	}
	if !reflect.DeepEqual(stations.lookups, []string{"77"}) {
		t.Fatalf("unexpected lookups %v", stations.lookups)
	}
}

func TestSelectAddressMustBeOnStreet(t *testing.T) {
	addrs, stations := newFakes()
	c := NewController(addrs, stations)
	ctx := context.Background()
	st := &State{}
	_ = c.SelectCity(ctx, st, "Ventura")
	c.SelectStreet(st, "ANCHORS")

	err := c.SelectAddress(ctx, st, "100 Main St 93001 (Station 05)")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if st.Address != nil {
		t.Fatal("address must stay cleared")
	}

	_ = c.SelectAddress(ctx, st, "1 Anchors Way 93001 (Station 05)")
	if err := c.SelectAddress(ctx, st, ""); err != nil || st.Address != nil || st.Station != nil {
		t.Fatalf("empty address must clear selection, got %v %+v", err, st)
	}
}
