package utils

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	sealedPrefix = "v1:"
	cipherInfo   = "sheetbill/google-tokens"
)

// ErrMalformedCiphertext is returned when a sealed value cannot be decoded.
var ErrMalformedCiphertext = errors.New("malformed token ciphertext")

// TokenCipher encrypts OAuth tokens at rest with XChaCha20-Poly1305. The key
// is derived from a configured secret with HKDF-SHA256. A cipher without a
// secret stores values unchanged.
type TokenCipher struct {
	aead cipher.AEAD
}

// NewTokenCipher returns a cipher for secret. An empty secret disables encryption.
func NewTokenCipher(secret string) (*TokenCipher, error) {
	if secret == "" {
		return &TokenCipher{}, nil
	}
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(cipherInfo)), key); err != nil {
		return nil, fmt.Errorf("derive token key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create token cipher: %w", err)
	}
	return &TokenCipher{aead: aead}, nil
}

// Enabled reports whether values are encrypted.
func (c *TokenCipher) Enabled() bool {
	return c != nil && c.aead != nil
}

// Seal encrypts plaintext. Empty strings stay empty.
func (c *TokenCipher) Seal(plaintext string) (string, error) {
	if !c.Enabled() || plaintext == "" {
		return plaintext, nil
	}
	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plaintext)+c.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.RawStdEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal. Values stored before encryption was enabled are
// returned as they are.
func (c *TokenCipher) Open(value string) (string, error) {
	if !strings.HasPrefix(value, sealedPrefix) {
		return value, nil
	}
	if !c.Enabled() {
		return "", fmt.Errorf("%w: no encryption key configured", ErrMalformedCiphertext)
	}
	raw, err := base64.RawStdEncoding.DecodeString(strings.TrimPrefix(value, sealedPrefix))
	if err != nil || len(raw) < c.aead.NonceSize() {
		return "", ErrMalformedCiphertext
	}
	nonce, ciphertext := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}
	return string(plain), nil
}
