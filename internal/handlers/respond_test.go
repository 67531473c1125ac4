package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recircleBack/internal/models"
)

func TestWriteJSONKeepsStatusOnEncodeFailure(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusCreated, make(chan int))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d", http.StatusCreated, rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("expected an empty body, got %q", rr.Body.String())
	}
}

func TestWriteValidationErrors(t *testing.T) {
	rr := httptest.NewRecorder()
	writeValidationErrors(rr, models.ValidationErrors{"password": "Password fields didn't match."})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["password"] != "Password fields didn't match." {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestAsValidationErrors(t *testing.T) {
	errs, ok := asValidationErrors(models.ValidationErrors{"title": "This field is required."})
	if !ok {
		t.Fatal("expected ValidationErrors to be recognized")
	}
	if errs["title"] == "" {
		t.Fatal("expected the field map to survive")
	}

	if _, ok := asValidationErrors(models.ErrItemNotFound); ok {
		t.Fatal("sentinel errors are not validation errors")
	}
}

func TestGetParam(t *testing.T) {
	req := httptest.NewRequest("GET", "/users/5/items?:id=5", nil)
	if got := getParam(req, "id"); got != "5" {
		t.Errorf("expected 5, got %q", got)
	}

	req = httptest.NewRequest("GET", "/items?id=7", nil)
	if got := getParam(req, "id"); got != "7" {
		t.Errorf("expected 7, got %q", got)
	}
}

func TestGetIntParam(t *testing.T) {
	req := httptest.NewRequest("GET", "/items?:id=abc", nil)
	if _, ok := getIntParam(req, "id"); ok {
		t.Error("expected non-numeric id to be rejected")
	}

	req = httptest.NewRequest("GET", "/items?:id=-1", nil)
	if _, ok := getIntParam(req, "id"); ok {
		t.Error("expected negative id to be rejected")
	}

	req = httptest.NewRequest("GET", "/items?:id=12", nil)
	id, ok := getIntParam(req, "id")
	if !ok || id != 12 {
		t.Errorf("expected 12, got %d (ok=%v)", id, ok)
	}
}

func TestPaging(t *testing.T) {
	req := httptest.NewRequest("GET", "/items", nil)
	limit, offset := paging(req)
	if limit != 50 || offset != 0 {
		t.Errorf("expected defaults 50/0, got %d/%d", limit, offset)
	}

	req = httptest.NewRequest("GET", "/items?limit=10&offset=30", nil)
	limit, offset = paging(req)
	if limit != 10 || offset != 30 {
		t.Errorf("expected 10/30, got %d/%d", limit, offset)
	}

	req = httptest.NewRequest("GET", "/items?limit=10000", nil)
	limit, _ = paging(req)
	if limit != 50 {
		t.Errorf("expected oversized limit to fall back to 50, got %d", limit)
	}
}
