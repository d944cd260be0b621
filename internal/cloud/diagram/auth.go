package diagram

import (
	"encoding/json"
	"net/http"

	"github.com/utec/diagram-cli/internal/session"
)

const (
	registerPath = "/auth/register"
	loginPath    = "/auth/login"

	registerFailedMessage     = "registration failed"
	invalidCredentialsMessage = "invalid credentials"
)

type authPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the login response
type LoginResponse struct {
	Token string        `json:"token"`
	User  *session.User `json:"user"`
}

// HasCredential returns true when the response carries both a token and a user
func (lr LoginResponse) HasCredential() bool {
	return lr.Token != "" && lr.User != nil
}

func (c *client) Register(email, password string) (interface{}, error) {
	res, resErr := c.doJSON(http.MethodPost, registerPath, authPayload{email, password}, nil)
	if resErr != nil {
		return nil, resErr
	}
	defer res.Body.Close()

	if !isSuccess(res) {
		return nil, parseResponseError(res, registerFailedMessage)
	}

	var out interface{}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) Login(email, password string) (LoginResponse, error) {
	res, resErr := c.doJSON(http.MethodPost, loginPath, authPayload{email, password}, nil)
	if resErr != nil {
		return LoginResponse{}, resErr
	}
	defer res.Body.Close()

	if !isSuccess(res) {
		return LoginResponse{}, parseResponseError(res, invalidCredentialsMessage)
	}

	var out LoginResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return LoginResponse{}, err
	}

	if out.HasCredential() {
		if err := c.config.Session.SaveCredential(out.Token, *out.User); err != nil {
			return LoginResponse{}, err
		}
	}
	return out, nil
}
