package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newLocationTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/p/":
			_, _ = w.Write([]byte(`[
				{"code": 1, "name": "Hà Nội"},
				{"code": 79, "name": "Hồ Chí Minh"},
				{"code": 99, "name": "  "}
			]`))
		case "/p/1":
			if r.URL.Query().Get("depth") != "2" {
				t.Fatalf("expected depth=2 for district fetch")
			}
			_, _ = w.Write([]byte(`{
				"code": 1,
				"name": "Hà Nội",
				"districts": [
					{"code": "001", "name": "Ba Đình"},
					{"code": "002", "name": "Hoàn Kiếm"}
				]
			}`))
		case "/d/001":
			_, _ = w.Write([]byte(`{
				"code": "001",
				"name": "Ba Đình",
				"wards": [{"code": 1, "name": "Phúc Xá"}]
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestLocationClientProvinces(t *testing.T) {
	server := newLocationTestServer(t)
	defer server.Close()

	c := NewLocationClient(server.URL, 0)
	provinces, err := c.Provinces(context.Background())
	if err != nil {
		t.Fatalf("provinces failed: %v", err)
	}
	if len(provinces) != 2 {
		t.Fatalf("expected nameless rows skipped, want 2, got %d", len(provinces))
	}
	if provinces[0].Code != "1" || provinces[0].Name != "Hà Nội" {
		t.Fatalf("unexpected first province: %+v", provinces[0])
	}
}

func TestLocationClientDistrictsAndWards(t *testing.T) {
	server := newLocationTestServer(t)
	defer server.Close()

	c := NewLocationClient(server.URL, 0)
	districts, err := c.Districts(context.Background(), "1")
	if err != nil {
		t.Fatalf("districts failed: %v", err)
	}
	if len(districts) != 2 || districts[0].Name != "Ba Đình" {
		t.Fatalf("unexpected districts: %+v", districts)
	}

	wards, err := c.Wards(context.Background(), "001")
	if err != nil {
		t.Fatalf("wards failed: %v", err)
	}
	if len(wards) != 1 || wards[0].Name != "Phúc Xá" {
		t.Fatalf("unexpected wards: %+v", wards)
	}
}

func TestLocationClientEmptyParentCode(t *testing.T) {
	c := NewLocationClient("http://127.0.0.1:1", 0)

	districts, err := c.Districts(context.Background(), "  ")
	if err != nil {
		t.Fatalf("expected no error for empty province code, got %v", err)
	}
	if len(districts) != 0 {
		t.Fatalf("expected empty districts, got %d", len(districts))
	}

	wards, err := c.Wards(context.Background(), "")
	if err != nil {
		t.Fatalf("expected no error for empty district code, got %v", err)
	}
	if len(wards) != 0 {
		t.Fatalf("expected empty wards, got %d", len(wards))
	}
}
