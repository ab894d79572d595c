package creds

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/crypto/chacha20poly1305"
)

// FileStore keeps credentials sealed on disk. The TOML payload is encrypted
// with ChaCha20-Poly1305 under a random key generated on first save and kept
// 0600 in a sibling file; the nonce is prepended to the ciphertext.
type FileStore struct {
	path    string
	keyPath string
}

var _ Store = (*FileStore)(nil)

// NewFileStore builds a store writing the sealed pair to path and the key to
// keyPath.
func NewFileStore(path, keyPath string) *FileStore {
	return &FileStore{path: path, keyPath: keyPath}
}

// Get loads and opens the stored pair. A missing file or a present-but-empty
// pair yields ErrNotConfigured.
func (s *FileStore) Get() (Credentials, error) {
	if s == nil {
		return Credentials{}, fmt.Errorf("credential store is nil")
	}
	sealed, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, ErrNotConfigured
		}
		return Credentials{}, fmt.Errorf("read credentials: %w", err)
	}

	key, err := os.ReadFile(s.keyPath)
	if err != nil {
		return Credentials{}, fmt.Errorf("read credential key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return Credentials{}, fmt.Errorf("init cipher: %w", err)
	}
	if len(sealed) < aead.NonceSize() {
		return Credentials{}, fmt.Errorf("credential file truncated")
	}
	nonce, box := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, box, nil)
	if err != nil {
		return Credentials{}, fmt.Errorf("open credentials: %w", err)
	}

	var pair Credentials
	if err := toml.Unmarshal(plain, &pair); err != nil {
		return Credentials{}, fmt.Errorf("parse credentials: %w", err)
	}
	if !pair.Configured() {
		return Credentials{}, ErrNotConfigured
	}
	return pair, nil
}

// Save seals and writes the pair, creating directories as needed.
func (s *FileStore) Save(pair Credentials) error {
	if s == nil {
		return fmt.Errorf("credential store is nil")
	}
	if !pair.Configured() {
		return fmt.Errorf("save credentials: email and token are both required")
	}

	plain, err := toml.Marshal(pair)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	key, err := s.loadOrCreateKey()
	if err != nil {
		return err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return fmt.Errorf("init cipher: %w", err)
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}
	sealed := aead.Seal(nonce, nonce, plain, nil)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}
	if err := os.WriteFile(s.path, sealed, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Clear removes the stored pair. The key file is left in place so earlier
// backups remain readable; a missing credential file is not an error.
func (s *FileStore) Clear() error {
	if s == nil {
		return fmt.Errorf("credential store is nil")
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

func (s *FileStore) loadOrCreateKey() ([]byte, error) {
	key, err := os.ReadFile(s.keyPath)
	if err == nil {
		if len(key) != chacha20poly1305.KeySize {
			return nil, fmt.Errorf("credential key has %d bytes, want %d", len(key), chacha20poly1305.KeySize)
		}
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read credential key: %w", err)
	}

	key = make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate credential key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.keyPath), 0o700); err != nil {
		return nil, fmt.Errorf("create key dir: %w", err)
	}
	if err := os.WriteFile(s.keyPath, key, 0o600); err != nil {
		return nil, fmt.Errorf("write credential key: %w", err)
	}
	return key, nil
}
