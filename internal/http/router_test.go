package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"staybook/internal/auth"
	intconfig "staybook/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, auth.TokenManager, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	mock.MatchExpectationsInOrder(false)

	tm := auth.TokenManager{Secret: []byte("test-secret")}
	r := NewRouter(intconfig.Env{}, tm)
	return r, mock, tm, func() { db.Close() }
}

func doRequest(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r, _, _, done := newTestRouter(t)
	defer done()

	w := doRequest(r, http.MethodGet, "/api/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestListAccommodationsEmptyIs404(t *testing.T) {
	r, mock, _, done := newTestRouter(t)
	defer done()

	mock.ExpectQuery("FROM accommodations a").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "location", "region", "city_id", "city", "type",
			"x_coordinate", "y_coordinate", "homepage", "description",
			"check_in_time", "check_out_time", "cancellation_policy", "info",
		}))

	w := doRequest(r, http.MethodGet, "/api/v1/accommodations", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (%s)", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["error"] != "No accommodations found" {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestListAccommodationsRegionFilter(t *testing.T) {
	r, mock, _, done := newTestRouter(t)
	defer done()

	mock.ExpectQuery("FROM accommodations a").WithArgs("jeju").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "location", "region", "city_id", "city", "type",
			"x_coordinate", "y_coordinate", "homepage", "description",
			"check_in_time", "check_out_time", "cancellation_policy", "info",
		}).AddRow(1, "Jeju Resort", "Seogwipo", "jeju", 0, "", "resort", 0, 0, "", "", "15:00", "11:00", "", ""))

	w := doRequest(r, http.MethodGet, "/api/v1/accommodations?region=jeju", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var body struct {
		Region string            `json:"region"`
		Data   []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Region != "jeju" || len(body.Data) != 1 {
		t.Fatalf("unexpected payload: %s", w.Body.String())
	}
}

func TestWishlistRequiresAuth(t *testing.T) {
	r, _, _, done := newTestRouter(t)
	defer done()

	w := doRequest(r, http.MethodGet, "/api/v1/wishlists/1", "", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for anonymous wishlist access, got %d", w.Code)
	}
}

func TestStaffRouteForbiddenForRegularUser(t *testing.T) {
	r, _, tm, done := newTestRouter(t)
	defer done()

	token, err := tm.Issue(5, false)
	if err != nil {
		t.Fatalf("token issue error: %v", err)
	}

	w := doRequest(r, http.MethodPost, "/api/v1/staff/cities", token, `{"name":"Busan"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-staff, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestStaffCanCreateCity(t *testing.T) {
	r, mock, tm, done := newTestRouter(t)
	defer done()

	token, err := tm.Issue(1, true)
	if err != nil {
		t.Fatalf("token issue error: %v", err)
	}

	mock.ExpectExec("INSERT INTO cities").
		WillReturnResult(sqlmock.NewResult(10, 1))

	w := doRequest(r, http.MethodPost, "/api/v1/staff/cities", token, `{"name":"Busan"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStaffCreateCityValidation(t *testing.T) {
	r, _, tm, done := newTestRouter(t)
	defer done()

	token, err := tm.Issue(1, true)
	if err != nil {
		t.Fatalf("token issue error: %v", err)
	}

	w := doRequest(r, http.MethodPost, "/api/v1/staff/cities", token, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d (%s)", w.Code, w.Body.String())
	}

	var fields map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &fields); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if got := fields["name"]; len(got) != 1 || got[0] != "This field is required" {
		t.Fatalf("unexpected field errors: %v", fields)
	}
}

func TestBookingCancelRequestConflict(t *testing.T) {
	r, mock, tm, done := newTestRouter(t)
	defer done()

	token, err := tm.Issue(5, false)
	if err != nil {
		t.Fatalf("token issue error: %v", err)
	}

	mock.ExpectQuery("FROM bookings b").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "guest_id", "package_id", "check_in", "check_out",
			"guests", "status", "created_date", "updated_date",
			"package_name", "room_type_name", "accommodation_name",
		}).AddRow(9, 5, 0, 3, time.Now(), time.Now().AddDate(0, 0, 2), 2, "cancel_requested",
			time.Now(), time.Now(), "Pkg", "Room", "Stay"))
	mock.ExpectQuery("FROM booking_line_items li").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_id", "daily_availability_id", "date", "retail_price", "cost_price",
		}))

	w := doRequest(r, http.MethodPost, "/api/v1/bookings/9/cancel-request", token, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for repeated cancel request, got %d (%s)", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["error"] != "Cancellation already requested" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}
