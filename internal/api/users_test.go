package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quickcourt/client-go/internal/types"
)

func TestRegisterUser_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/userregister" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"access_token":"tok-1","user_id":"u-1","role":"customer","email":"asha@example.com"}`))
	}))
	defer srv.Close()

	res, err := RegisterUser(context.Background(), newTransport(srv), types.RegisterUserRequest{
		FullName: "Asha Rao", Email: "asha@example.com", Password: "secret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.AccessToken != "tok-1" || res.UserID != "u-1" || res.Role != "customer" {
		t.Fatalf("result not normalized: %+v", res)
	}
}

func TestRegisterUser_EmailConflict(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	_, err := RegisterUser(context.Background(), newTransport(srv), types.RegisterUserRequest{
		FullName: "Asha Rao", Email: "asha@example.com", Password: "secret",
	})
	if !errors.Is(err, types.ErrEmailExists) {
		t.Fatalf("err = %v, want ErrEmailExists", err)
	}
}

func TestRegisterUser_ValidatesFields(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if _, err := RegisterUser(context.Background(), newTransport(srv), types.RegisterUserRequest{Email: "a@b.c"}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestVerifyOTP(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/userregister/verify-otp" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-2","user_id":"u-1","role":"customer","email":"asha@example.com"}`))
	}))
	defer srv.Close()

	res, err := VerifyOTP(context.Background(), newTransport(srv), types.VerifyOTPRequest{Email: "asha@example.com", OTP: "123456"})
	if err != nil || res.AccessToken != "tok-2" {
		t.Fatalf("result = %+v err = %v", res, err)
	}

	if _, err := VerifyOTP(context.Background(), newTransport(srv), types.VerifyOTPRequest{Email: "asha@example.com"}); err == nil {
		t.Fatal("expected validation error for missing otp")
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"ok","timestamp":"2026-08-30T10:00:00Z","version":"1.4.2"}`))
	}))
	defer srv.Close()

	h, err := Health(context.Background(), newTransport(srv))
	if err != nil || h.Status != "ok" || h.Version != "1.4.2" {
		t.Fatalf("health = %+v err = %v", h, err)
	}
}
