package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-checkin/internal/audit"
	"github.com/BruksfildServices01/gym-checkin/internal/config"
	infraRepo "github.com/BruksfildServices01/gym-checkin/internal/infra/repository"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
	"github.com/BruksfildServices01/gym-checkin/internal/timezone"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

type recordingAuditLogs struct {
	mu      sync.Mutex
	filters []audit.Filter
}

func (r *recordingAuditLogs) List(_ context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, f)
	return nil, 0, nil
}

type server struct {
	t      *testing.T
	engine *gin.Engine
	clock  *testClock
	audits *recordingAuditLogs
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loc := timezone.Location(timezone.DefaultTimezone)
	clock := &testClock{now: time.Date(2022, 1, 20, 8, 0, 0, 0, loc)}
	audits := &recordingAuditLogs{}
	cfg := &config.Config{JWTSecret: "test-secret", CORSOrigins: []string{"*"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repos := Repositories{
		Gyms:      infraRepo.NewGymMemoryRepository(clock),
		CheckIns:  infraRepo.NewCheckInMemoryRepository(clock),
		Users:     infraRepo.NewUserMemoryRepository(clock),
		AuditLogs: audits,
	}

	r := gin.New()
	Mount(r, NewHandlers(repos, nil, cfg, logger, clock), cfg)

	return &server{t: t, engine: r, clock: clock, audits: audits}
}

func (s *server) do(method, path, token string, body any) (int, map[string]any) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w.Code, out
}

func (s *server) signUp(email string) string {
	s.t.Helper()

	status, _ := s.do(http.MethodPost, "/api/users", "", map[string]any{
		"name":     "John Doe",
		"email":    email,
		"password": "123456",
	})
	require.Equal(s.t, http.StatusCreated, status)

	status, body := s.do(http.MethodPost, "/api/sessions", "", map[string]any{
		"email":    email,
		"password": "123456",
	})
	require.Equal(s.t, http.StatusOK, status)

	token, ok := body["token"].(string)
	require.True(s.t, ok)
	return token
}

func (s *server) createGym(token, title string, lat, lng float64) string {
	s.t.Helper()

	status, body := s.do(http.MethodPost, "/api/gyms", token, map[string]any{
		"title":     title,
		"latitude":  lat,
		"longitude": lng,
	})
	require.Equal(s.t, http.StatusCreated, status, body)
	return body["gym"].(map[string]any)["id"].(string)
}

func TestRegisterAndProfile(t *testing.T) {
	s := newServer(t)
	token := s.signUp("john@example.com")

	status, body := s.do(http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, status)

	u := body["user"].(map[string]any)
	assert.Equal(t, "john@example.com", u["email"])
	assert.NotContains(t, u, "password_hash")

	status, body = s.do(http.MethodPost, "/api/users", "", map[string]any{
		"name":     "Other",
		"email":    "JOHN@example.com",
		"password": "abcdef",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "user_already_exists", body["error_code"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := newServer(t)
	s.signUp("john@example.com")

	status, body := s.do(http.MethodPost, "/api/sessions", "", map[string]any{
		"email":    "john@example.com",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid_credentials", body["error_code"])
}

func TestSecuredRoutesRequireToken(t *testing.T) {
	s := newServer(t)

	for _, path := range []string{"/api/me", "/api/gyms/search?q=x", "/api/check-ins/metrics"} {
		status, _ := s.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
	}
}

func TestGymRequestValidation(t *testing.T) {
	s := newServer(t)
	token := s.signUp("john@example.com")

	tests := []struct {
		name string
		body map[string]any
		code string
	}{
		{"missing title", map[string]any{"latitude": 0, "longitude": 0}, "invalid_title"},
		{"blank title", map[string]any{"title": "  ", "latitude": 0, "longitude": 0}, "invalid_title"},
		{"missing latitude", map[string]any{"title": "Gym", "longitude": 0}, "invalid_latitude"},
		{"latitude out of range", map[string]any{"title": "Gym", "latitude": 91, "longitude": 0}, "invalid_latitude"},
		{"longitude out of range", map[string]any{"title": "Gym", "latitude": 0, "longitude": -181}, "invalid_longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := s.do(http.MethodPost, "/api/gyms", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.code, body["error_code"])
		})
	}

	// the equator and the prime meridian are valid coordinates
	s.createGym(token, "Null Island Gym", 0, 0)
}

func TestSearchAndNearby(t *testing.T) {
	s := newServer(t)
	token := s.signUp("john@example.com")

	s.createGym(token, "JavaScript Gym", -22.5688278, -48.6357383)
	s.createGym(token, "TypeScript Gym", -22.5688278, -48.6357383)
	s.createGym(token, "Far Gym", -27.0610928, -49.5229501)

	status, body := s.do(http.MethodGet, "/api/gyms/search?q=JavaScript", token, nil)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "JavaScript Gym", data[0].(map[string]any)["title"])
	assert.EqualValues(t, 1, body["page"])

	status, body = s.do(http.MethodGet, "/api/gyms/search?q=Nothing&page=2", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["data"])

	for _, page := range []string{"922337203685477581", "9223372036854775807"} {
		status, body = s.do(http.MethodGet, "/api/gyms/search?q=Gym&page="+page, token, nil)
		require.Equal(t, http.StatusOK, status, page)
		assert.Empty(t, body["data"], page)
	}

	status, _ = s.do(http.MethodGet, "/api/gyms/search", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = s.do(http.MethodGet, "/api/gyms/nearby?latitude=-22.5688278&longitude=-48.6357383", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 2)
}

func TestCheckInFlow(t *testing.T) {
	s := newServer(t)
	token := s.signUp("john@example.com")
	gymID := s.createGym(token, "JavaScript Gym", -22.5688278, -48.6357383)
	farID := s.createGym(token, "Far Gym", -22.5499049, -48.6500533)

	here := map[string]any{"latitude": -22.5688278, "longitude": -48.6357383}

	status, body := s.do(http.MethodPost, "/api/gyms/"+gymID+"/check-ins", token, here)
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, gymID, body["check_in"].(map[string]any)["gym_id"])

	status, body = s.do(http.MethodPost, "/api/gyms/"+gymID+"/check-ins", token, here)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "max_number_of_check_ins", body["error_code"])

	s.clock.Set(s.clock.Now().AddDate(0, 0, 1))

	status, body = s.do(http.MethodPost, "/api/gyms/"+farID+"/check-ins", token, here)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "max_distance", body["error_code"])

	status, body = s.do(http.MethodPost, "/api/gyms/unknown/check-ins", token, here)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "resource_not_found", body["error_code"])

	status, _ = s.do(http.MethodPost, "/api/gyms/"+gymID+"/check-ins", token, here)
	require.Equal(t, http.StatusCreated, status)

	status, body = s.do(http.MethodGet, "/api/check-ins/history", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 2)

	status, body = s.do(http.MethodGet, "/api/check-ins/history?page=9223372036854775807", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["data"])

	status, body = s.do(http.MethodGet, "/api/check-ins/metrics", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["check_ins_count"])

	other := s.signUp("jane@example.com")
	status, body = s.do(http.MethodGet, "/api/check-ins/metrics", other, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, body["check_ins_count"])
}

func TestAuditLogsAreScopedToCaller(t *testing.T) {
	s := newServer(t)
	token := s.signUp("john@example.com")

	status, me := s.do(http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	userID := me["user"].(map[string]any)["id"].(string)

	status, body := s.do(http.MethodGet, "/api/me/audit-logs?action=check_in_created&from=2022-01-01&to=2022-01-20&limit=500", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 50, body["limit"])
	assert.Empty(t, body["logs"])

	require.Len(t, s.audits.filters, 1)
	f := s.audits.filters[0]
	assert.Equal(t, userID, f.UserID)
	assert.Equal(t, "check_in_created", f.Action)
	require.NotNil(t, f.From)
	require.NotNil(t, f.To)
	assert.Equal(t, "2022-01-21", timezone.DateKey(*f.To))

	status, body = s.do(http.MethodGet, "/api/me/audit-logs?from=20-01-2022", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid_from", body["error_code"])
}
