package api

import (
	"context"
	"net/http"

	"github.com/quickcourt/client-go/internal/errs"
	"github.com/quickcourt/client-go/internal/transport"
	"github.com/quickcourt/client-go/internal/types"
)

// RegisterUser creates an account. The caller persists the returned
// session material into its session store.
func RegisterUser(ctx context.Context, t *transport.Transport, req types.RegisterUserRequest) (*types.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := t.Send(ctx, &transport.Request{
		Method:    http.MethodPost,
		Path:      "/userregister",
		Body:      req,
		Operation: "register_user",
	})
	if err != nil {
		if errs.StatusOf(err) == http.StatusConflict {
			return nil, types.ErrEmailExists
		}
		return nil, err
	}
	var w authResultWire
	if err := resp.Decode(&w); err != nil {
		return nil, err
	}
	return w.normalize(), nil
}

// VerifyOTP confirms a registration one-time password. A successful
// verification also returns fresh session material.
func VerifyOTP(ctx context.Context, t *transport.Transport, req types.VerifyOTPRequest) (*types.AuthResult, error) {
	if err := types.ValidateIDPresent(req.Email, "email"); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(req.OTP, "otp"); err != nil {
		return nil, err
	}
	resp, err := t.Send(ctx, &transport.Request{
		Method:    http.MethodPost,
		Path:      "/userregister/verify-otp",
		Body:      req,
		Operation: "verify_otp",
	})
	if err != nil {
		return nil, err
	}
	var w authResultWire
	if err := resp.Decode(&w); err != nil {
		return nil, err
	}
	return w.normalize(), nil
}
