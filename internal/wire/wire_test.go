package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"delivery-backend/internal/data/repository"
	"delivery-backend/internal/data/repository/memory"
	"delivery-backend/pkg/notify"
	"delivery-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type recordingSender struct {
	mu     sync.Mutex
	bodies []string
}

func (s *recordingSender) SendEmail(_ context.Context, _, _, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies = append(s.bodies, body)
	return nil
}

func (s *recordingSender) SendSMS(_ context.Context, _, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies = append(s.bodies, body)
	return nil
}

type testApp struct {
	app  *App
	repo *repository.Repository
	sms  *recordingSender
}

func newTestApp(t *testing.T, config *utils.Config) *testApp {
	t.Helper()
	if config == nil {
		config = &utils.Config{
			Email:     utils.EmailConfig{ResetLinkBase: "http://localhost:5173/reset-password"},
			SMS:       utils.SMSConfig{CountryCode: "+91"},
			RateLimit: utils.RateLimitConfig{RequestsPerSecond: 0},
		}
	}
	repo := memory.NewRepository()
	sms := &recordingSender{}
	notifier := &notify.Notifier{Email: &recordingSender{}, SMS: sms}
	return &testApp{
		app:  Wiring(repo, notifier, config, zaptest.NewLogger(t)),
		repo: repo,
		sms:  sms,
	}
}

func (a *testApp) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.app.Router.ServeHTTP(rec, req)

	var out map[string]any
	if bytes.HasPrefix(bytes.TrimSpace(rec.Body.Bytes()), []byte("{")) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestRegisterLoginResetScenario(t *testing.T) {
	a := newTestApp(t, nil)

	rec, body := a.do(t, http.MethodPost, "/register", `{"identifier":"a@b.com","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Registered successfully!", body["message"])

	rec, body = a.do(t, http.MethodPost, "/register", `{"identifier":"a@b.com","password":"pw2"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, body["error"], "already registered")

	rec, body = a.do(t, http.MethodPost, "/login", `{"identifier":"a@b.com","password":"pw1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Login successful!", body["message"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", user["identifier"])
	assert.NotZero(t, user["id"])
	assert.NotContains(t, user, "password")

	rec, body = a.do(t, http.MethodPost, "/reset-password", `{"identifier":"a@b.com","newPassword":"pw1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "New password cannot be the same as the old password", body["error"])
}

func TestLongPasswordOverHTTP(t *testing.T) {
	a := newTestApp(t, nil)
	long := strings.Repeat("p", 73)

	rec, _ := a.do(t, http.MethodPost, "/register", `{"identifier":"a@b.com","password":"`+long+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = a.do(t, http.MethodPost, "/login", `{"identifier":"a@b.com","password":"`+long+`"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body := a.do(t, http.MethodPost, "/login", `{"identifier":"a@b.com","password":"`+long+`EXTRA"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid password", body["error"])

	rec, _ = a.do(t, http.MethodPost, "/reset-password", `{"identifier":"a@b.com","newPassword":"`+long+`q"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthErrorStatuses(t *testing.T) {
	a := newTestApp(t, nil)
	a.do(t, http.MethodPost, "/register", `{"identifier":"a@b.com","password":"pw1"}`)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		errMsg string
	}{
		{"malformed json", "/register", `{`, http.StatusBadRequest, "Invalid request body"},
		{"missing password", "/register", `{"identifier":"a@b.com"}`, http.StatusBadRequest, "Email/Phone and password required"},
		{"bad identifier", "/register", `{"identifier":"12345","password":"x"}`, http.StatusBadRequest, "Enter valid email or 10-digit phone number"},
		{"unknown user", "/login", `{"identifier":"x@y.com","password":"pw1"}`, http.StatusNotFound, "User not found"},
		{"wrong password", "/login", `{"identifier":"a@b.com","password":"bad"}`, http.StatusBadRequest, "Invalid password"},
		{"reset unknown", "/send-reset", `{"identifier":"1234567890"}`, http.StatusNotFound, "User not found"},
		{"reset invalid", "/send-reset", `{"identifier":"nope"}`, http.StatusBadRequest, "Enter valid email or 10-digit phone number"},
		{"otp missing", "/verify-otp", `{"identifier":"1234567890"}`, http.StatusBadRequest, "Phone and OTP required"},
		{"new password missing", "/reset-password", `{"identifier":"a@b.com"}`, http.StatusBadRequest, "Email/Phone and new password required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := a.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.errMsg, body["error"])
		})
	}
}

func TestPhoneOTPOverHTTP(t *testing.T) {
	a := newTestApp(t, nil)
	a.do(t, http.MethodPost, "/register", `{"identifier":"9876543210","password":"pw1"}`)

	rec, body := a.do(t, http.MethodPost, "/send-reset", `{"identifier":"9876543210"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OTP sent to 9876543210", body["message"])

	u, err := a.repo.User.FindByIdentifier(context.Background(), "9876543210")
	require.NoError(t, err)
	require.NotNil(t, u.ResetOTP)
	otp := *u.ResetOTP
	require.Len(t, a.sms.bodies, 1)
	assert.True(t, strings.HasSuffix(a.sms.bodies[0], otp))

	rec, body = a.do(t, http.MethodPost, "/verify-otp", `{"identifier":"9876543210","otp":"`+otp+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OTP verified successfully!", body["message"])

	rec, body = a.do(t, http.MethodPost, "/reset-password", `{"identifier":"9876543210","newPassword":"pw2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Password changed successfully!", body["message"])

	rec, body = a.do(t, http.MethodPost, "/reset-password", `{"identifier":"9876543210","newPassword":"pw1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "You cannot reuse an old password", body["error"])
}

func TestOrdersAndCustomers(t *testing.T) {
	a := newTestApp(t, nil)

	rec, body := a.do(t, http.MethodPost, "/api/orders",
		`{"id":4242,"customerName":"Ravi","customerMobile":"9999999999","customerEmail":"r@x.com","customerAddress":"MG Road","kgs":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Order & Customer added successfully!", body["message"])
	order := body["order"].(map[string]any)
	assert.Equal(t, "4242", order["id"])
	assert.Equal(t, "Chicken", order["productName"])
	assert.EqualValues(t, 2, order["kgs"])
	assert.Equal(t, "Pending", order["status"])

	rec, _ = a.do(t, http.MethodPost, "/api/orders",
		`{"customerName":"Ravi","customerMobile":"9999999999","customerEmail":"r@x.com","customerAddress":"MG Road"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body = a.do(t, http.MethodPost, "/api/orders", `{"id":"4242","customerName":"X","customerMobile":"1","customerEmail":"e","customerAddress":"a"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Order 4242 already exists", body["error"])

	rec, _ = a.do(t, http.MethodPost, "/api/orders", `{"customerName":"Ravi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = a.do(t, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)

	rec, _ = a.do(t, http.MethodGet, "/api/customers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var customers []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customers))
	require.Len(t, customers, 1)
	assert.Equal(t, "9999999999", customers[0]["phone"])

	rec, _ = a.do(t, http.MethodPost, "/api/customers", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestOrderAcceptsZeroKgsAndLongFields(t *testing.T) {
	a := newTestApp(t, nil)
	name := strings.Repeat("n", 150)

	rec, body := a.do(t, http.MethodPost, "/api/orders",
		`{"customerName":"`+name+`","customerMobile":"9999999999","customerEmail":"r@x.com","customerAddress":"MG Road","kgs":0,"price":-5}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	order := body["order"].(map[string]any)
	assert.EqualValues(t, 0, order["kgs"])
	assert.EqualValues(t, -5, order["price"])
	assert.Equal(t, name, order["customerName"])
}

func TestCatalogAppendAndReadBack(t *testing.T) {
	a := newTestApp(t, nil)

	rec, body := a.do(t, http.MethodPost, "/api/products", `{"id":99,"name":"Test"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Product added successfully!", body["message"])
	assert.Equal(t, map[string]any{"id": float64(99), "name": "Test"}, body["product"])

	rec, _ = a.do(t, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Contains(t, products, map[string]any{"id": float64(99), "name": "Test"})

	rec, body = a.do(t, http.MethodPost, "/api/mapview", `{"lat":1.5,"lng":2.5}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Marker added successfully!", body["message"])
	assert.Contains(t, body, "marker")

	rec, _ = a.do(t, http.MethodGet, "/api/drivers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec, body = a.do(t, http.MethodPost, "/api/reviews", `["not","an","object"]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Request body must be a JSON object", body["error"])
}

func TestRateLimitOnResetRoutes(t *testing.T) {
	a := newTestApp(t, &utils.Config{
		SMS:       utils.SMSConfig{CountryCode: "+91"},
		RateLimit: utils.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2},
	})

	for i := 0; i < 2; i++ {
		rec, _ := a.do(t, http.MethodPost, "/verify-otp", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	rec, body := a.do(t, http.MethodPost, "/verify-otp", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, body["error"])

	// other routes are not throttled
	rec, _ = a.do(t, http.MethodPost, "/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	a := newTestApp(t, nil)

	rec, _ := a.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	a.do(t, http.MethodGet, "/api/orders", "")
	rec, _ = a.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/api/orders",status="200"} 1`)
}
