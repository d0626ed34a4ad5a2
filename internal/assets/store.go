// Package assets provides read access to the flat text assets (city list,
// per-city address files and the station phone directory) from a local
// directory, an HTTP origin or a MinIO bucket.
package assets

import (
	"context"
	"fmt"

	"station_lookup_backend/platform/apperr"
	"station_lookup_backend/platform/config"
	"station_lookup_backend/platform/validator"
)

// Store reads a named text asset. Implementations return an apperr
// NotFound error when the asset does not exist.
type Store interface {
	Read(ctx context.Context, name string) (string, error)
}

// Names resolves logical assets to file names.
type Names struct {
	CityList          string
	StationDirectory  string
	AddressFileSuffix string
}

// NamesFromConfig builds Names from the asset configuration.
func NamesFromConfig(cfg config.AssetConfig) Names {
	return Names{
		CityList:          cfg.GetCityListFile(),
		StationDirectory:  cfg.GetStationDirectoryFile(),
		AddressFileSuffix: cfg.GetAddressFileSuffix(),
	}
}

// AddressFile returns the address file name for city, e.g. "Ventura_Address.txt".
func (n Names) AddressFile(city string) string {
	return city + n.AddressFileSuffix
}

// New creates the Store selected by ASSET_SOURCE.
func New(cfg config.AssetConfig, minioCfg config.MinIOConfig) (Store, error) {
	switch cfg.GetAssetSource() {
	case config.AssetSourceFile:
		return NewDirStore(cfg.GetAssetDir()), nil
	case config.AssetSourceHTTP:
		return NewHTTPStore(cfg.GetAssetBaseURL(), cfg.GetAssetTimeout()), nil
	case config.AssetSourceMinIO:
		return NewMinIOStore(minioCfg)
	default:
		return nil, fmt.Errorf("unknown asset source %q", cfg.GetAssetSource())
	}
}

func checkName(op, name string) error {
	if !validator.IsAssetName(name) {
		return apperr.Validation("invalid asset name").WithOp(op)
	}
	return nil
}

func notFound(op, name string) error {
	return apperr.NotFound(fmt.Sprintf("asset %s not found", name)).WithOp(op)
}
