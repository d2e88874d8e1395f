package api

import (
	"context"
	"net/http"

	"github.com/Bebric123/MedAnalyzer/model"
)

// Registration is the payload for creating an account.
type Registration struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Access  string     `json:"access"`
	Refresh string     `json:"refresh"`
	User    model.User `json:"user"`
}

// Login authenticates, persists the issued tokens and user in the session
// store, and bootstraps CSRF. Field errors come back on *Error.Fields.
func (c *Client) Login(ctx context.Context, email, password string) (model.User, error) {
	var resp authResponse
	err := c.sendJSON(ctx, http.MethodPost, "/auth/login/", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return model.User{}, err
	}

	tokens := model.Tokens{Access: resp.Access, Refresh: resp.Refresh}
	if err := c.session.Save(tokens, resp.User); err != nil {
		c.log.Warn("persist session", "error", err)
	}

	c.bootstrapCSRF(ctx)
	return resp.User, nil
}

// Register creates the account and logs it in, mirroring Login.
func (c *Client) Register(ctx context.Context, reg Registration) (model.User, error) {
	var resp authResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/register/", reg, &resp); err != nil {
		return model.User{}, err
	}

	tokens := model.Tokens{Access: resp.Access, Refresh: resp.Refresh}
	if err := c.session.Save(tokens, resp.User); err != nil {
		c.log.Warn("persist session", "error", err)
	}

	c.bootstrapCSRF(ctx)
	return resp.User, nil
}

// bootstrapCSRF hits the CSRF endpoint after login/register. Failure is
// logged, not fatal; the next state-changing request will surface it.
func (c *Client) bootstrapCSRF(ctx context.Context) {
	if err := c.getJSON(ctx, "/auth/csrf/", nil); err != nil {
		c.log.Warn("csrf bootstrap", "error", err)
	}
}

// Logout invalidates the refresh token server-side and clears the local
// session either way.
func (c *Client) Logout(ctx context.Context) error {
	body := map[string]string{"refresh": c.session.RefreshToken()}
	err := c.sendJSON(ctx, http.MethodPost, "/auth/logout/", body, nil)
	if clearErr := c.session.Clear(); clearErr != nil {
		c.log.Warn("clear session", "error", clearErr)
	}
	return err
}

// Profile fetches the authenticated account.
func (c *Client) Profile(ctx context.Context) (model.User, error) {
	var u model.User
	err := c.getJSON(ctx, "/auth/profile/", &u)
	return u, err
}

// ResetPassword requests a password-reset email.
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	return c.sendJSON(ctx, http.MethodPost, "/auth/password/reset/", map[string]string{"email": email}, nil)
}

// ChangePassword replaces the current password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	return c.sendJSON(ctx, http.MethodPost, "/auth/password/change/", body, nil)
}
