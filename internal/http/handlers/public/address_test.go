package public

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vietcart-next/internal/constants"
	"github.com/vietcart-next/internal/models"
	"github.com/vietcart-next/internal/provider"
	"github.com/vietcart-next/internal/service"

	"github.com/gin-gonic/gin"
)

type stubLocationAPI struct{}

func (stubLocationAPI) Provinces(_ context.Context) ([]models.LocationOption, error) {
	return []models.LocationOption{{Code: "1", Name: "Hà Nội"}}, nil
}

func (stubLocationAPI) Districts(_ context.Context, _ string) ([]models.LocationOption, error) {
	return []models.LocationOption{{Code: "001", Name: "Ba Đình"}}, nil
}

func (stubLocationAPI) Wards(_ context.Context, _ string) ([]models.LocationOption, error) {
	return []models.LocationOption{{Code: "00001", Name: "Phúc Xá"}}, nil
}

func newLocationTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&provider.Container{
		AddressService: service.NewAddressService(stubLocationAPI{}, 0),
	})
	r := gin.New()
	r.GET("/locations/provinces", h.ListProvinces)
	r.GET("/locations/provinces/:province_code/districts", h.ListDistricts)
	return r
}

func decodeLocationBody(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var body struct {
		StatusCode int                    `json:"status_code"`
		Data       map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body.StatusCode != 0 {
		t.Fatalf("unexpected status code: %d", body.StatusCode)
	}
	return body.Data
}

func TestListProvincesCarriesLevel(t *testing.T) {
	r := newLocationTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/locations/provinces", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	data := decodeLocationBody(t, w.Body.Bytes())
	if data["level"] != constants.LocationLevelProvince {
		t.Fatalf("unexpected level: %v", data["level"])
	}
	options, ok := data["options"].([]interface{})
	if !ok || len(options) != 1 {
		t.Fatalf("unexpected options: %+v", data["options"])
	}
}

func TestListDistrictsCarriesParentCode(t *testing.T) {
	r := newLocationTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/locations/provinces/1/districts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	data := decodeLocationBody(t, w.Body.Bytes())
	if data["level"] != constants.LocationLevelDistrict {
		t.Fatalf("unexpected level: %v", data["level"])
	}
	if data["parent_code"] != "1" {
		t.Fatalf("unexpected parent code: %v", data["parent_code"])
	}
}
