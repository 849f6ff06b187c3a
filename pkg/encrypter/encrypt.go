package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidKeyLength   = errors.New("encryption key must be 16, 24, or 32 bytes long")
	ErrCiphertextTooShort = errors.New("ciphertext is too short")
	ErrDecryptionFailed   = errors.New("decryption failed: invalid ciphertext or key")
	ErrTicketExpired      = errors.New("ticket expired")
	ErrTicketMalformed    = errors.New("ticket malformed")
)

func validateKey(key []byte) error {
	switch len(key) {
	case 16, 24, 32:
		return nil
	}
	return fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
}

func (e implEncrypter) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// Encrypt seals plaintext with AES-GCM and returns URL-safe base64.
func (e implEncrypter) Encrypt(plaintext string) (string, error) {
	aead, err := e.gcm()
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (e implEncrypter) Decrypt(ciphertext string) (string, error) {
	aead, err := e.gcm()
	if err != nil {
		return "", err
	}
	raw, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	if len(raw) < aead.NonceSize() {
		return "", ErrCiphertextTooShort
	}
	nonce, body := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, body, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return string(plain), nil
}

func (e implEncrypter) SealTicket(subject string, ttl time.Duration) (string, error) {
	exp := e.now().Add(ttl).Unix()
	return e.Encrypt(strconv.FormatInt(exp, 10) + "|" + subject)
}

func (e implEncrypter) OpenTicket(ticket string) (string, error) {
	plain, err := e.Decrypt(ticket)
	if err != nil {
		return "", err
	}
	expStr, subject, ok := strings.Cut(plain, "|")
	if !ok || subject == "" {
		return "", ErrTicketMalformed
	}
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil {
		return "", ErrTicketMalformed
	}
	if e.now().Unix() > exp {
		return "", ErrTicketExpired
	}
	return subject, nil
}
