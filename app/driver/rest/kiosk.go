package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const (
	requestOTPPath = "/kiosk/request-otp/"
	verifyOTPPath  = "/kiosk/verify-otp/"
)

// CustomerPayload is the loyalty-card holder attached to a kiosk session.
type CustomerPayload struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	Email       string `json:"email"`
	LoyaltyCard string `json:"loyalty_card"`
}

// OTPRequestResponse is the request-otp envelope.
type OTPRequestResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
	CustomerName     string `json:"customer_name"`
}

// OTPVerifyResponse is the verify-otp envelope.
type OTPVerifyResponse struct {
	Success   bool             `json:"success"`
	SessionID string           `json:"session_id"`
	Customer  *CustomerPayload `json:"customer"`
}

// KioskRequestOTP sends a one-time passcode to the loyalty-card holder.
func (c *Client) KioskRequestOTP(ctx context.Context, loyaltyCard string) (*OTPRequestResponse, error) {
	body := map[string]string{"loyalty_card": loyaltyCard}
	var out OTPRequestResponse
	if err := c.do(ctx, http.MethodPost, requestOTPPath, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// KioskVerifyOTP exchanges the passcode for a kiosk session.
func (c *Client) KioskVerifyOTP(ctx context.Context, loyaltyCard, code string) (*OTPVerifyResponse, error) {
	body := map[string]string{"loyalty_card": loyaltyCard, "otp_code": code}
	var out OTPVerifyResponse
	if err := c.do(ctx, http.MethodPost, verifyOTPPath, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// KioskLogout invalidates the kiosk session server-side.
func (c *Client) KioskLogout(ctx context.Context, sessionID string) error {
	path := fmt.Sprintf("/kiosk/%s/logout/", url.PathEscape(sessionID))
	return c.do(ctx, http.MethodPost, path, nil, nil, nil)
}
