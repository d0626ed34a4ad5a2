// Package domain holds the cascading city → street → address → station
// selection state and its explicit transitions.
package domain

import (
	"context"

	addrdomain "station_lookup_backend/internal/addresses/domain"
	stationdomain "station_lookup_backend/internal/stations/domain"
	"station_lookup_backend/platform/apperr"
)

// State is the selection held for one session. Each stage only ever resets
// the stages after it.
type State struct {
	Cities          []string               `json:"cities"`
	City            string                 `json:"city"`
	Addresses       []addrdomain.Address   `json:"addresses"`
	Streets         []string               `json:"streets"`
	Street          string                 `json:"street"`
	StreetAddresses []addrdomain.Address   `json:"streetAddresses"`
	Address         *addrdomain.Address    `json:"address"`
	Station         *stationdomain.Station `json:"station"`
}

// AddressSource loads the city list and a city's parsed addresses.
type AddressSource interface {
	ListCities(ctx context.Context) ([]string, error)
	ListAddresses(ctx context.Context, city string) ([]addrdomain.Address, error)
}

// StationResolver resolves a station code, returning nil when unknown.
type StationResolver interface {
	Lookup(ctx context.Context, code string) (*stationdomain.Station, error)
}

// Controller applies selection transitions to a State.
type Controller struct {
	addresses AddressSource
	stations  StationResolver
}

func NewController(addresses AddressSource, stations StationResolver) *Controller {
	return &Controller{addresses: addresses, stations: stations}
}

// Init loads the city list. On failure the list is left empty.
func (c *Controller) Init(ctx context.Context, st *State) error {
	st.Cities = nil
	cities, err := c.addresses.ListCities(ctx)
	if err != nil {
		return err
	}
	st.Cities = cities
	return nil
}

// SelectCity sets the city, loads its addresses and derives the street keys.
// An empty city clears the selection.
func (c *Controller) SelectCity(ctx context.Context, st *State, city string) error {
	st.City = city
	st.Addresses = nil
	st.Streets = nil
	resetStreet(st)

	if city == "" {
		return nil
	}

	addresses, err := c.addresses.ListAddresses(ctx, city)
	if err != nil {
		return err
	}
	st.Addresses = addresses
	st.Streets = addrdomain.StreetKeys(addresses)
	return nil
}

// SelectStreet narrows the loaded addresses to one street key.
func (c *Controller) SelectStreet(st *State, street string) {
	resetStreet(st)
	st.Street = addrdomain.NormalizeStreetKey(street)
	if st.Street == "" {
		return
	}
	st.StreetAddresses = addrdomain.FilterByStreet(st.Addresses, st.Street)
}

// SelectAddress picks one of the street's addresses and resolves its station.
// An empty fullAddress clears the address and station.
func (c *Controller) SelectAddress(ctx context.Context, st *State, fullAddress string) error {
	resetAddress(st)
	if fullAddress == "" {
		return nil
	}

	var picked *addrdomain.Address
	for i := range st.StreetAddresses {
		if st.StreetAddresses[i].FullAddress == fullAddress {
			a := st.StreetAddresses[i]
			picked = &a
			break
		}
	}
	if picked == nil {
		return apperr.Validation("address is not on the selected street").WithOp("selection.SelectAddress")
	}
	st.Address = picked

	station, err := c.stations.Lookup(ctx, picked.Station)
	if err != nil {
		return err
	}
	st.Station = station
	return nil
}

func resetStreet(st *State) {
	st.Street = ""
	st.StreetAddresses = nil
	resetAddress(st)
}

func resetAddress(st *State) {
	st.Address = nil
	st.Station = nil
}
