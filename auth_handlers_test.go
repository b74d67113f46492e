package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJSON(t *testing.T, router http.Handler, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	app := newTestApplication(t)
	router := app.newRouter()

	w := postJSON(t, router, "/auth/register", `{"email":"a@example.com","password":"secret","username":"a"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "hashed_password") {
		t.Fatal("response must not carry the password hash")
	}

	w = postJSON(t, router, "/auth/register", `{"email":"a@example.com","password":"other"}`, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("second register: expected 409, got %d", w.Code)
	}
}

func TestLogin_UniformUnauthorizedBody(t *testing.T) {
	app := newTestApplication(t)
	router := app.newRouter()

	if w := postJSON(t, router, "/auth/register", `{"email":"a@example.com","password":"secret"}`, nil); w.Code != http.StatusCreated {
		t.Fatalf("register: %d", w.Code)
	}

	goodKey := map[string]string{"api-key": "test-api-key"}

	cases := []struct {
		name    string
		body    string
		headers map[string]string
	}{
		{"wrong api key", `{"email":"a@example.com","password":"secret"}`, map[string]string{"api-key": "nope"}},
		{"unknown email", `{"email":"b@example.com","password":"secret"}`, goodKey},
		{"wrong password", `{"email":"a@example.com","password":"wrong"}`, goodKey},
	}

	var firstBody string
	for _, tc := range cases {
		w := postJSON(t, router, "/auth/login", tc.body, tc.headers)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, w.Code)
		}
		if firstBody == "" {
			firstBody = w.Body.String()
		} else if w.Body.String() != firstBody {
			t.Fatalf("%s: body %q differs from %q; failure modes must not leak", tc.name, w.Body.String(), firstBody)
		}
	}
}

func TestLoginThenMe(t *testing.T) {
	app := newTestApplication(t)
	router := app.newRouter()

	if w := postJSON(t, router, "/auth/register", `{"email":"a@example.com","password":"secret","username":"a"}`, nil); w.Code != http.StatusCreated {
		t.Fatalf("register: %d", w.Code)
	}

	w := postJSON(t, router, "/auth/login", `{"email":"a@example.com","password":"secret"}`,
		map[string]string{"api-key": "test-api-key"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &token); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	if token.TokenType != "bearer" {
		t.Fatalf("expected token_type bearer, got %q", token.TokenType)
	}
	if token.AccessToken == "" {
		t.Fatal("expected a token")
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var profile struct {
		Email    string `json:"email"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.Email != "a@example.com" || profile.Username != "a" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestMe_BadTokenIsUnauthorized(t *testing.T) {
	app := newTestApplication(t)
	router := app.newRouter()

	for _, header := range []string{"", "Bearer garbage", "Token whatever"} {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestLogout_IsAnAcknowledgementOnly(t *testing.T) {
	app := newTestApplication(t)
	router := app.newRouter()

	w := postJSON(t, router, "/auth/logout", ``, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
