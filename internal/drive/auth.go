package drive

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	drivev3 "google.golang.org/api/drive/v3"

	apperrors "paisa/internal/errors"
)

// Authorizer acquires an access credential for the remote store. The
// user-facing consent screen lives in the browser; the backend only builds
// the consent URL and exchanges the resulting authorization code.
type Authorizer interface {
	// AuthURL returns the URL the user visits to grant access.
	AuthURL(state string) string

	// Exchange trades an authorization code for a reusable token source.
	Exchange(ctx context.Context, code string) (oauth2.TokenSource, error)
}

// OAuthAuthorizer implements Authorizer against Google's OAuth endpoint with
// the drive.file scope, which limits access to files this app created.
type OAuthAuthorizer struct {
	cfg *oauth2.Config
}

// NewOAuthAuthorizer builds an authorizer from client credentials.
func NewOAuthAuthorizer(clientID, clientSecret, redirectURL string) *OAuthAuthorizer {
	return &OAuthAuthorizer{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{drivev3.DriveFileScope},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthURL returns the consent URL for the given anti-forgery state.
func (a *OAuthAuthorizer) AuthURL(state string) string {
	return a.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token source. Rejected codes
// surface as AUTH_DENIED; transport problems as AUTH_FAILED.
func (a *OAuthAuthorizer) Exchange(ctx context.Context, code string) (oauth2.TokenSource, error) {
	token, err := a.cfg.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, apperrors.Wrap(apperrors.ErrAuthDenied, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrAuthFailed, err)
	}
	return a.cfg.TokenSource(ctx, token), nil
}
