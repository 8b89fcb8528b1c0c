package tokens

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Store persists an OAuth token between runs.
type Store interface {
	Load() (*oauth2.Token, error)
	Save(token *oauth2.Token) error
	Delete() error
}

type fileStore struct {
	path string
}

func NewFileStore(path string) Store {
	if path == "" {
		panic("path is required")
	}

	return &fileStore{
		path: path,
	}
}

// Load reads the cached token from the file.
func (s *fileStore) Load() (*oauth2.Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read token cache")
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, errors.Wrap(err, "failed to parse token cache")
	}

	return &token, nil
}

// Save writes the token to the file. 0600: the token grants upload access.
func (s *fileStore) Save(token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return errors.Wrap(err, "failed to serialize token")
	}
	return os.WriteFile(s.path, data, 0600)
}

// Delete removes the token file.
func (s *fileStore) Delete() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		// Already gone.
		return nil
	}
	return os.Remove(s.path)
}

// IsNotExist reports whether err means the cache file has not been
// written yet.
func IsNotExist(err error) bool {
	return os.IsNotExist(errors.Cause(err))
}

// FilePath returns the token cache location. CLIPTOOLS_TOKEN_PATH takes
// priority; the fallback is token.json in the working directory.
func FilePath() string {
	if path := os.Getenv("CLIPTOOLS_TOKEN_PATH"); path != "" {
		return path
	}
	return "token.json"
}
