package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	addrservice "station_lookup_backend/internal/addresses/service"
	"station_lookup_backend/internal/assets"
	"station_lookup_backend/internal/selection/domain"
	"station_lookup_backend/internal/selection/repository"
	"station_lookup_backend/internal/selection/service"
	"station_lookup_backend/internal/selection/transport"
	stationdomain "station_lookup_backend/internal/stations/domain"
	stationservice "station_lookup_backend/internal/stations/service"
	"station_lookup_backend/platform/httpkit"
	"station_lookup_backend/platform/logger"
	"station_lookup_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := assets.NewFSStore(fstest.MapFS{
		"cityList.txt":         &fstest.MapFile{Data: []byte("Fillmore\n")},
		"Fillmore_Address.txt": &fstest.MapFile{Data: []byte("1\tFIL\tFILLMORE\t93015\t250\t\tCentral\tAVE\tAve\n")},
	})
	names := assets.Names{CityList: "cityList.txt", StationDirectory: "VCStationPhoneNumbers.txt", AddressFileSuffix: "_Address.txt"}
	log := logger.New("development")

	addrs := addrservice.New(store, names, log)
	stations := stationservice.New(store, names, stationdomain.NewResolver(stationdomain.DefaultFallback()), "US", log)
	svc := service.New(domain.NewController(addrs, stations), repository.NewMemoryStore(time.Minute), log)

	engine := gin.New()
	New(svc, validator.New()).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func do(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) transport.SelectionResponse {
	t.Helper()
	var resp transport.SelectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestSelectionLifecycle(t *testing.T) {
	engine := newTestEngine()

	rec := do(t, engine, http.MethodPost, "/api/v1/selections", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode(t, rec)
	if created.ID == "" || len(created.Cities) != 1 || created.Station != nil {
		t.Fatalf("unexpected session %+v", created)
	}
	base := "/api/v1/selections/" + created.ID

	rec = do(t, engine, http.MethodPut, base+"/city", `{"city":"Fillmore"}`)
	if rec.Code != http.StatusOK || len(decode(t, rec).Streets) != 1 {
		t.Fatalf("select city: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, engine, http.MethodPut, base+"/street", `{"street":"Central"}`)
	if rec.Code != http.StatusOK || len(decode(t, rec).StreetAddresses) != 1 {
		t.Fatalf("select street: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, engine, http.MethodPut, base+"/address", `{"fullAddress":"250 Central Ave 93015 (Station FIL)"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("select address: %d %s", rec.Code, rec.Body.String())
	}
	resp := decode(t, rec)
	if resp.Station == nil || resp.Station.Phone != "805-524-0586" {
		t.Fatalf("expected Fillmore station, got %+v", resp.Station)
	}

	rec = do(t, engine, http.MethodGet, base, "")
	if rec.Code != http.StatusOK || decode(t, rec).Address == nil {
		t.Fatalf("get: %d %s", rec.Code, rec.Body.String())
	}

	if rec = do(t, engine, http.MethodDelete, base, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec = do(t, engine, http.MethodGet, base, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestUnknownSessionIsNotFound(t *testing.T) {
	engine := newTestEngine()

	for _, path := range []string{
		"/api/v1/selections/6f1c2f0e-4a8b-4d55-9d42-3b8e4b1a2c3d",
		"/api/v1/selections/not-a-uuid",
	} {
		if rec := do(t, engine, http.MethodGet, path, ""); rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rec.Code)
		}
	}
}

func TestSelectAddressNotOnStreet(t *testing.T) {
	engine := newTestEngine()
	id := decode(t, do(t, engine, http.MethodPost, "/api/v1/selections", "")).ID

	rec := do(t, engine, http.MethodPut, "/api/v1/selections/"+id+"/address", `{"fullAddress":"1 Nowhere"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSelectCityValidation(t *testing.T) {
	engine := newTestEngine()
	id := decode(t, do(t, engine, http.MethodPost, "/api/v1/selections", "")).ID

	if rec := do(t, engine, http.MethodPut, "/api/v1/selections/"+id+"/city", `{"city":"../x"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	rec := do(t, engine, http.MethodPut, "/api/v1/selections/"+id+"/city", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
	var errResp httpkit.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Error != "invalid request" || errResp.Details == nil {
		t.Fatalf("expected invalid request with details, got %+v", errResp)
	}
}
