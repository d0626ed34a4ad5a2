package transport

import "station_lookup_backend/internal/addresses/domain"

// CityPath binds the :city route parameter.
type CityPath struct {
	City string `uri:"city" validate:"required,max=100,assetname"`
}

// StreetQuery binds the optional street filter.
type StreetQuery struct {
	Street string `form:"street" validate:"max=200"`
}

type AddressResponse struct {
	Station     string `json:"station"`
	StreetKey   string `json:"streetKey"`
	FullAddress string `json:"fullAddress"`
}

type CityListResponse struct {
	Items []string `json:"items"`
}

type StreetListResponse struct {
	City  string   `json:"city"`
	Items []string `json:"items"`
}

type AddressListResponse struct {
	City   string            `json:"city"`
	Street string            `json:"street,omitempty"`
	Items  []AddressResponse `json:"items"`
}

// ToAddressResponse converts a domain address to its JSON form.
func ToAddressResponse(a domain.Address) AddressResponse {
	return AddressResponse{
		Station:     a.Station,
		StreetKey:   a.StreetKey,
		FullAddress: a.FullAddress,
	}
}

// ToAddressResponses converts a slice, never returning nil.
func ToAddressResponses(items []domain.Address) []AddressResponse {
	out := make([]AddressResponse, len(items))
	for i, a := range items {
		out[i] = ToAddressResponse(a)
	}
	return out
}
