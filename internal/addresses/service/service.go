package service

import (
	"context"

	"station_lookup_backend/internal/addresses/domain"
	"station_lookup_backend/internal/assets"
	"station_lookup_backend/platform/apperr"
	"station_lookup_backend/platform/logger"
	"station_lookup_backend/platform/validator"
)

// Service answers city, street and address queries straight from the text
// assets. Every call re-reads the underlying file.
type Service struct {
	store assets.Store
	names assets.Names
	log   *logger.Logger
}

// New creates a new address lookup service.
func New(store assets.Store, names assets.Names, log *logger.Logger) *Service {
	return &Service{store: store, names: names, log: log}
}

// ListCities returns the cities from the city list. A missing list yields no cities.
func (s *Service) ListCities(ctx context.Context) ([]string, error) {
	text, err := s.read(ctx, "addresses.ListCities", s.names.CityList)
	if err != nil {
		return nil, err
	}
	return domain.ParseCities(text), nil
}

// ListAddresses returns the unique addresses of a city. A city without an
// address file yields no addresses.
func (s *Service) ListAddresses(ctx context.Context, city string) ([]domain.Address, error) {
	if !validator.IsAssetName(city) {
		return nil, apperr.Validation("invalid city").WithOp("addresses.ListAddresses")
	}

	text, err := s.read(ctx, "addresses.ListAddresses", s.names.AddressFile(city))
	if err != nil {
		return nil, err
	}
	return domain.ParseAddresses(text), nil
}

// ListStreets returns the sorted street keys of a city.
func (s *Service) ListStreets(ctx context.Context, city string) ([]string, error) {
	addresses, err := s.ListAddresses(ctx, city)
	if err != nil {
		return nil, err
	}
	return domain.StreetKeys(addresses), nil
}

// ListStreetAddresses returns the addresses of a city on one street.
func (s *Service) ListStreetAddresses(ctx context.Context, city, street string) ([]domain.Address, error) {
	addresses, err := s.ListAddresses(ctx, city)
	if err != nil {
		return nil, err
	}
	return domain.FilterByStreet(addresses, domain.NormalizeStreetKey(street)), nil
}

// read fetches an asset, turning "not found" into empty content.
func (s *Service) read(ctx context.Context, op, name string) (string, error) {
	text, err := s.store.Read(ctx, name)
	if err == nil {
		return text, nil
	}
	if apperr.Is(err, apperr.KindNotFound) {
		s.log.WithContext(ctx).AssetError(op, name, err)
		return "", nil
	}
	return "", err
}
