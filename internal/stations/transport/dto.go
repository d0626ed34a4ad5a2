package transport

import "station_lookup_backend/internal/stations/domain"

// CodePath binds the :code route parameter. The rule matches
// domain.IsValidCode, which also gates fallback file entries.
type CodePath struct {
	Code string `uri:"code" validate:"required,max=10,alphanum"`
}

type StationResponse struct {
	Number    string `json:"number"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	PhoneE164 string `json:"phoneE164,omitempty"`
}

// StationLookupResponse always carries the requested code; Station is null
// when the code did not resolve.
type StationLookupResponse struct {
	Code    string           `json:"code"`
	Station *StationResponse `json:"station"`
}

// ToStationResponse converts a domain station, keeping nil as nil.
func ToStationResponse(st *domain.Station) *StationResponse {
	if st == nil {
		return nil
	}
	return &StationResponse{
		Number:    st.Number,
		Name:      st.Name,
		Phone:     st.Phone,
		PhoneE164: st.PhoneE164,
	}
}
