package youtube

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/yksugi/cliptools/configs"
	"github.com/yksugi/cliptools/tokens"
)

// uploadScope is the only scope the tool needs.
const uploadScope = "https://www.googleapis.com/auth/youtube.upload"

// NewService builds an authenticated YouTube client. The token cache is
// consulted first; an expired token with a refresh token is refreshed,
// anything else triggers the interactive browser flow. Whatever token
// comes out is persisted back to the store.
func NewService(ctx context.Context, store tokens.Store) (*ytapi.Service, error) {
	secretsPath := configs.ClientSecretsPath()
	data, err := os.ReadFile(secretsPath)
	if err != nil {
		return nil, errors.Wrapf(err,
			"failed to read %s (create an OAuth client in the Google Cloud console and download its JSON)",
			secretsPath)
	}

	cfg, err := google.ConfigFromJSON(data, uploadScope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse client secrets")
	}

	token, err := store.Load()
	if err != nil && !tokens.IsNotExist(err) {
		return nil, err
	}

	switch {
	case token != nil && token.Valid():
		// Cached token is still good.

	case token != nil && token.RefreshToken != "":
		logrus.Info("cached token expired, refreshing")
		token, err = cfg.TokenSource(ctx, token).Token()
		if err != nil {
			return nil, errors.Wrap(err, "failed to refresh token")
		}
		if err := store.Save(token); err != nil {
			return nil, err
		}

	default:
		token, err = authorize(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := store.Save(token); err != nil {
			return nil, err
		}
	}

	svc, err := ytapi.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx, token)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create youtube client")
	}
	return svc, nil
}

// authorize runs the loopback authorization flow: a redirect handler on
// an ephemeral local port receives the code while the user consents in
// the browser.
func authorize(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open redirect listener")
	}
	defer listener.Close()

	cfg.RedirectURL = fmt.Sprintf("http://%s/", listener.Addr().String())

	state, err := randomState()
	if err != nil {
		return nil, err
	}

	codeCh := make(chan string, 1)
	srv := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("state") != state {
				http.Error(w, "state mismatch", http.StatusBadRequest)
				return
			}
			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "authorization denied: "+r.URL.Query().Get("error"), http.StatusBadRequest)
				return
			}
			fmt.Fprintln(w, "Authorization received. You can close this tab.")
			codeCh <- code
		}),
	}
	go srv.Serve(listener)
	defer srv.Close()

	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
	logrus.Infof("open this URL in your browser to authorize:\n\n  %s\n", authURL)
	openBrowser(authURL)

	var code string
	select {
	case code = <-codeCh:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}
	return token, nil
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate state")
	}
	return hex.EncodeToString(buf), nil
}

// openBrowser is best effort; the URL is always printed anyway.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		logrus.Debugf("could not open browser: %v", err)
	}
}
