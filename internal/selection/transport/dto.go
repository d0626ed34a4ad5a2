package transport

import (
	addrtransport "station_lookup_backend/internal/addresses/transport"
	"station_lookup_backend/internal/selection/domain"
	stationtransport "station_lookup_backend/internal/stations/transport"
)

// IDPath binds the :id route parameter.
type IDPath struct {
	ID string `uri:"id" validate:"required,uuid"`
}

// SelectCityRequest and the other select requests clear the stage and
// everything after it when the value is empty.
type SelectCityRequest struct {
	City string `json:"city" validate:"omitempty,max=100,assetname"`
}

type SelectStreetRequest struct {
	Street string `json:"street" validate:"max=200"`
}

type SelectAddressRequest struct {
	FullAddress string `json:"fullAddress" validate:"max=500"`
}

// SelectionResponse is the client view of a session. The full city address
// list stays server-side; only the selected street's addresses are sent.
type SelectionResponse struct {
	ID              string                            `json:"id"`
	Cities          []string                          `json:"cities"`
	City            string                            `json:"city"`
	Streets         []string                          `json:"streets"`
	Street          string                            `json:"street"`
	StreetAddresses []addrtransport.AddressResponse   `json:"streetAddresses"`
	Address         *addrtransport.AddressResponse    `json:"address"`
	Station         *stationtransport.StationResponse `json:"station"`
}

func ToSelectionResponse(id string, st *domain.State) SelectionResponse {
	resp := SelectionResponse{
		ID:              id,
		Cities:          nonNil(st.Cities),
		City:            st.City,
		Streets:         nonNil(st.Streets),
		Street:          st.Street,
		StreetAddresses: addrtransport.ToAddressResponses(st.StreetAddresses),
		Station:         stationtransport.ToStationResponse(st.Station),
	}
	if st.Address != nil {
		a := addrtransport.ToAddressResponse(*st.Address)
		resp.Address = &a
	}
	return resp
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
