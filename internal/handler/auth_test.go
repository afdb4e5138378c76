package handler

import (
	"net/http"
	"strings"
	"testing"
)

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedAdmin(t)

	rr := env.do(t, http.MethodPost, "/api/admin/login", toJSON(t, map[string]string{
		"email":    admin.Email,
		"password": testPassword,
	}))
	assertStatus(t, rr, http.StatusOK)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Token   string `json:"token"`
		Admin   struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"admin"`
	}
	decodeJSON(t, rr, &resp)

	if !resp.Success || resp.Message != "Login successful" {
		t.Errorf("unexpected envelope: success=%v message=%q", resp.Success, resp.Message)
	}
	if resp.Token == "" {
		t.Error("expected a token in the response")
	}
	if resp.Admin.ID != admin.ID || resp.Admin.Email != admin.Email || resp.Admin.Name != admin.Name {
		t.Errorf("admin echo mismatch: %+v", resp.Admin)
	}

	// The returned token must verify against the same service.
	claims, err := env.authSvc.VerifyToken(resp.Token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.AdminID != admin.ID {
		t.Errorf("claims.AdminID = %d, want %d", claims.AdminID, admin.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedAdmin(t)

	rr := env.do(t, http.MethodPost, "/api/admin/login", toJSON(t, map[string]string{
		"email":    admin.Email,
		"password": "wrong-password",
	}))
	assertStatus(t, rr, http.StatusUnauthorized)
	assertMessage(t, rr, false, "Invalid credentials")
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t)

	rr := env.do(t, http.MethodPost, "/api/admin/login", toJSON(t, map[string]string{
		"email":    "nobody@example.com",
		"password": testPassword,
	}))
	// Identical to a wrong password: no hint which part failed.
	assertStatus(t, rr, http.StatusUnauthorized)
	assertMessage(t, rr, false, "Invalid credentials")
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv(t)

	cases := []map[string]string{
		{"email": "a@b.com"},
		{"password": "pw"},
		{},
	}
	for _, body := range cases {
		rr := env.do(t, http.MethodPost, "/api/admin/login", toJSON(t, body))
		assertStatus(t, rr, http.StatusBadRequest)
		assertMessage(t, rr, false, "Email and password are required")
	}
}

func TestLoginMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/admin/login", strings.NewReader("{not json"))
	assertStatus(t, rr, http.StatusBadRequest)
	assertMessage(t, rr, false, "Invalid request body")
}
