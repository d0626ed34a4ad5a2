package service

import (
	"context"
	"strings"

	"station_lookup_backend/internal/assets"
	"station_lookup_backend/internal/stations/domain"
	"station_lookup_backend/platform/apperr"
	"station_lookup_backend/platform/logger"
	"station_lookup_backend/platform/phone"
)

// Service resolves station codes against the station directory asset.
type Service struct {
	store    assets.Store
	names    assets.Names
	resolver *domain.Resolver
	region   string
	log      *logger.Logger
}

// New creates a new station lookup service.
func New(store assets.Store, names assets.Names, resolver *domain.Resolver, region string, log *logger.Logger) *Service {
	return &Service{
		store:    store,
		names:    names,
		resolver: resolver,
		region:   region,
		log:      log,
	}
}

// Lookup resolves code to a station. It returns nil without error when the
// code is unknown. A missing directory leaves only the fallback table.
func (s *Service) Lookup(ctx context.Context, code string) (*domain.Station, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	directory := ""
	if domain.IsNumericCode(code) {
		text, err := s.store.Read(ctx, s.names.StationDirectory)
		switch {
		case err == nil:
			directory = text
		case apperr.Is(err, apperr.KindNotFound):
			s.log.WithContext(ctx).AssetError("stations.Lookup", s.names.StationDirectory, err)
		default:
			return nil, err
		}
	}

	st := s.resolver.Resolve(directory, code)
	if st == nil {
		s.log.WithContext(ctx).Debug("station unresolved", "code", code)
		return nil, nil
	}
	if e164, ok := phone.NormalizeE164(st.Phone, s.region); ok {
		st.PhoneE164 = e164
	}
	return st, nil
}
