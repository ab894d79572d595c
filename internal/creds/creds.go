// Package creds handles persistence of the Napkin email+token pair.
// Credentials are sealed with ChaCha20-Poly1305 and stored under the user's
// data directory; environment variables can override the stored pair.
package creds

import (
	"errors"
	"os"
	"strings"
)

// Credentials is the email+token pair used to authenticate against Napkin.
type Credentials struct {
	Email string `toml:"email"`
	Token string `toml:"token"`
}

// Configured reports whether both fields are present. A pair missing either
// field counts as not configured.
func (c Credentials) Configured() bool {
	return strings.TrimSpace(c.Email) != "" && strings.TrimSpace(c.Token) != ""
}

// ErrNotConfigured is returned by Get when no usable credential pair exists.
var ErrNotConfigured = errors.New("credentials not configured")

// Store is the narrow contract the submission flow consumes. Implementations
// own the underlying storage mechanism.
type Store interface {
	Get() (Credentials, error)
	Save(Credentials) error
	Clear() error
}

const (
	envEmail = "NAPKIN_EMAIL"
	envToken = "NAPKIN_TOKEN"
)

// EnvStore reads credentials from NAPKIN_EMAIL and NAPKIN_TOKEN. It is
// read-only: Save and Clear report an error so callers don't silently lose
// writes.
type EnvStore struct{}

var _ Store = EnvStore{}

// Get returns the environment pair, or ErrNotConfigured when either
// variable is unset.
func (EnvStore) Get() (Credentials, error) {
	c := Credentials{
		Email: strings.TrimSpace(os.Getenv(envEmail)),
		Token: strings.TrimSpace(os.Getenv(envToken)),
	}
	if !c.Configured() {
		return Credentials{}, ErrNotConfigured
	}
	return c, nil
}

// Save is unsupported for environment-backed credentials.
func (EnvStore) Save(Credentials) error {
	return errors.New("environment credentials are read-only")
}

// Clear is unsupported for environment-backed credentials.
func (EnvStore) Clear() error {
	return errors.New("environment credentials are read-only")
}

// Chain reads from each store in order and returns the first configured
// pair. Writes go to the first store that accepts them, which lets an
// EnvStore override a FileStore without shadowing saves.
type Chain []Store

var _ Store = Chain(nil)

// Get returns the first configured pair in the chain.
func (c Chain) Get() (Credentials, error) {
	for _, s := range c {
		got, err := s.Get()
		if err == nil && got.Configured() {
			return got, nil
		}
		if err != nil && !errors.Is(err, ErrNotConfigured) {
			return Credentials{}, err
		}
	}
	return Credentials{}, ErrNotConfigured
}

// Save writes to the first store that accepts the pair.
func (c Chain) Save(pair Credentials) error {
	var lastErr error
	for _, s := range c {
		if err := s.Save(pair); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return errors.New("no credential store available")
}

// Clear clears every store that supports clearing.
func (c Chain) Clear() error {
	var lastErr error
	cleared := false
	for _, s := range c {
		if err := s.Clear(); err != nil {
			lastErr = err
			continue
		}
		cleared = true
	}
	if !cleared {
		return lastErr
	}
	return nil
}
