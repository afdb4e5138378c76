package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/edutalks/portfolio-api/internal/model"
	"github.com/edutalks/portfolio-api/internal/service"
	"github.com/edutalks/portfolio-api/internal/store"
)

const (
	testJWTSecret = "test-secret-for-handler-tests"
	testPassword  = "Admin@123"
)

// fakeMailer records contact submissions instead of dialing SMTP. Setting
// fail makes every send return an error.
type fakeMailer struct {
	sent []service.ContactMessage
	fail bool
}

func (m *fakeMailer) SendContact(ctx context.Context, msg service.ContactMessage) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, msg)
	return nil
}

// testEnv holds shared state for handler integration tests.
type testEnv struct {
	store      *store.Store
	authSvc    *service.AuthService
	mailer     *fakeMailer
	newsletter *service.Newsletter
	router     chi.Router
}

// newTestEnv creates a fresh environment with an in-memory SQLite store and
// a Chi router with routes mounted directly (no auth middleware).
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.Open("sqlite", "")
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authSvc := service.NewAuthService(st, testJWTSecret, time.Hour)
	mailer := &fakeMailer{}
	newsletter := service.NewNewsletter()

	authHandler := NewAuthHandler(authSvc, logger)
	jobHandler := NewJobHandler(st, logger)
	teamHandler := NewTeamHandler(st, logger)
	contactHandler := NewContactHandler(mailer, logger)
	newsHandler := NewNewsletterHandler(newsletter)
	sysHandler := NewSystemHandler(st, EnvStatus{HasJWTSecret: true}, logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", sysHandler.Health)
		r.Post("/contact", contactHandler.Submit)
		r.Post("/newsletter", newsHandler.Subscribe)
		r.Get("/newsletter/count", newsHandler.Count)
		r.Post("/admin/login", authHandler.Login)

		r.Get("/jobs", jobHandler.ListPublic)
		r.Post("/jobs", jobHandler.Create)
		r.Get("/jobs/admin/all", jobHandler.ListAll)
		r.Get("/jobs/{jobID}", jobHandler.Get)
		r.Put("/jobs/{jobID}", jobHandler.Update)
		r.Delete("/jobs/{jobID}", jobHandler.Delete)

		r.Get("/team", teamHandler.List)
		r.Post("/team", teamHandler.Create)
		r.Put("/team/{memberID}", teamHandler.Update)
		r.Delete("/team/{memberID}", teamHandler.Delete)
	})

	return &testEnv{
		store:      st,
		authSvc:    authSvc,
		mailer:     mailer,
		newsletter: newsletter,
		router:     r,
	}
}

// seedAdmin creates an admin account with the test password and returns it.
func (e *testEnv) seedAdmin(t *testing.T) *model.Admin {
	t.Helper()
	hash, err := service.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	admin := &model.Admin{Email: "admin@example.com", PasswordHash: hash, Name: "Test Admin"}
	if err := e.store.CreateAdmin(context.Background(), admin); err != nil {
		t.Fatalf("seedAdmin: %v", err)
	}
	return admin
}

// seedJob inserts a posting and returns it.
func (e *testEnv) seedJob(t *testing.T, title string, active bool) *model.Job {
	t.Helper()
	job := &model.Job{
		Title:       title,
		Department:  "Engineering",
		Location:    "Remote",
		Type:        model.JobTypeFullTime,
		Description: "Do the work.",
		IsActive:    active,
	}
	if err := e.store.CreateJob(context.Background(), job); err != nil {
		t.Fatalf("seedJob: %v", err)
	}
	return job
}

// seedTeamMember inserts a team member and returns it.
func (e *testEnv) seedTeamMember(t *testing.T, name string) *model.TeamMember {
	t.Helper()
	member := &model.TeamMember{Name: name, Role: "Engineer"}
	if err := e.store.CreateTeamMember(context.Background(), member); err != nil {
		t.Fatalf("seedTeamMember: %v", err)
	}
	return member
}

// do executes a request against the test router and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func toJSON(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("toJSON: %v", err)
	}
	return buf
}

func assertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rr.Code, want, rr.Body.String())
	}
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decodeJSON: %v; body = %s", err, rr.Body.String())
	}
}

// envelope mirrors the {success, message} error/status payload.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func assertMessage(t *testing.T, rr *httptest.ResponseRecorder, wantSuccess bool, wantMessage string) {
	t.Helper()
	var env envelope
	decodeJSON(t, rr, &env)
	if env.Success != wantSuccess {
		t.Errorf("success = %v, want %v", env.Success, wantSuccess)
	}
	if env.Message != wantMessage {
		t.Errorf("message = %q, want %q", env.Message, wantMessage)
	}
}
