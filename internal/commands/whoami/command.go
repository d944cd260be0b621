package whoami

import (
	"time"

	"github.com/utec/diagram-cli/internal/cli"
	"github.com/utec/diagram-cli/internal/cli/user"
	"github.com/utec/diagram-cli/internal/terminal"

	"github.com/golang-jwt/jwt/v5"
)

// Command is the `whoami` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	token, ok := clients.Session.Token()
	if !ok {
		ui.Print(terminal.NewTextLog("No user is currently logged in"))
		return nil
	}

	userDisplay := "<unknown>"
	if sessionUser, ok := clients.Session.User(); ok {
		userDisplay = sessionUser.Email
		if sessionUser.Name != "" {
			userDisplay = sessionUser.Name + " (" + sessionUser.Email + ")"
		}
	}
	ui.Print(terminal.NewTextLog("Currently logged in user: %s", userDisplay))

	expiresAt, ok := tokenExpiration(token)
	if !ok {
		return nil
	}

	if expiresAt.Before(time.Now()) {
		ui.Print(terminal.NewWarningLog("The session expired at %s, please login again", expiresAt.UTC().Format(time.RFC3339)))
		return nil
	}
	ui.Print(terminal.NewDebugLog("The session expires at %s", expiresAt.UTC().Format(time.RFC3339)))
	return nil
}

// tokenExpiration reads the exp claim of the session token without verifying its signature
func tokenExpiration(token string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
