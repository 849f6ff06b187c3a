package encrypter

import "time"

// Encrypter seals short-lived opaque tickets and hashes passwords.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	// SealTicket encrypts subject together with an expiry.
	SealTicket(subject string, ttl time.Duration) (string, error)
	// OpenTicket returns the subject of a valid, unexpired ticket.
	OpenTicket(ticket string) (string, error)
	HashPassword(password string) (string, error)
	CheckPassword(password, hash string) bool
}

type implEncrypter struct {
	key  []byte
	cost int
	now  func() time.Time
}

// New creates an Encrypter. key must be 16, 24 or 32 bytes.
func New(key string) (Encrypter, error) {
	k := []byte(key)
	if err := validateKey(k); err != nil {
		return nil, err
	}
	return &implEncrypter{key: k, cost: defaultCost, now: time.Now}, nil
}
