// Where: internal/cloud/login.go
// What: Device authorization login flow.
// Why: Acquire a session token without handling user credentials locally.
package cloud

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Poll outcomes reported by the token endpoint while authorization is open.
const (
	pollPending  = "authorization_pending"
	pollDeclined = "authorization_declined"
	pollExpired  = "expired_token"
)

// ErrLoginDeclined is returned when the user rejects the device authorization.
var ErrLoginDeclined = errors.New("login declined")

// defaultPollInterval is used when the server does not suggest one.
var defaultPollInterval = 5 * time.Second

// DeviceAuth is the response of the device authorization endpoint.
type DeviceAuth struct {
	DeviceCode      string `json:"deviceCode"`
	UserCode        string `json:"userCode"`
	VerificationURL string `json:"verificationUrl"`
	Interval        int    `json:"interval"`
	ExpiresIn       int    `json:"expiresIn"`
}

// StartDeviceLogin begins the device authorization flow.
func (c *Client) StartDeviceLogin(ctx context.Context) (DeviceAuth, error) {
	var auth DeviceAuth
	if err := c.doJSON(ctx, http.MethodPost, "/login/device", nil, &auth); err != nil {
		return DeviceAuth{}, err
	}
	return auth, nil
}

// RequestDeviceToken exchanges a device code for a session token.
// While the user has not completed the verification, the endpoint answers
// with authorization_pending.
func (c *Client) RequestDeviceToken(ctx context.Context, deviceCode string) (string, error) {
	payload := struct {
		DeviceCode string `json:"deviceCode"`
	}{DeviceCode: deviceCode}

	var result struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/login/token", payload, &result); err != nil {
		return "", err
	}
	return result.Token, nil
}

// Login runs the full device flow: request a device code, announce the
// verification URL, and poll the token endpoint until the authorization is
// granted, declined, or expired.
func Login(ctx context.Context, client *Client, announce func(auth DeviceAuth)) (string, error) {
	auth, err := client.StartDeviceLogin(ctx)
	if err != nil {
		return "", err
	}
	if announce != nil {
		announce(auth)
	}

	interval := time.Duration(auth.Interval) * time.Second
	if interval <= 0 {
		interval = defaultPollInterval
	}
	deadline := time.Now().Add(time.Duration(auth.ExpiresIn) * time.Second)
	if auth.ExpiresIn <= 0 {
		deadline = time.Now().Add(5 * time.Minute)
	}

	for {
		token, err := client.RequestDeviceToken(ctx, auth.DeviceCode)
		if err == nil {
			return token, nil
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			return "", err
		}
		switch apiErr.Message {
		case pollPending:
			// keep polling
		case pollDeclined:
			return "", ErrLoginDeclined
		case pollExpired:
			return "", fmt.Errorf("login verification expired")
		default:
			return "", err
		}

		if time.Now().After(deadline) {
			return "", fmt.Errorf("login verification expired")
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(interval):
		}
	}
}
