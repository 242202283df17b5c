package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher turns the serialized note collection into an opaque string and back.
// It knows nothing about notes, storage or sessions.
//
// Encrypt always writes the authenticated format. Decrypt also accepts blobs
// written by the historical browser build, so an old vault can be opened and is
// migrated the next time it is saved.
type Cipher interface {
	// Encrypt derives a key from password with a fresh random salt and seals
	// plaintext with AES-256-GCM. Returns ErrEmptyPassword for an empty
	// password.
	Encrypt(plaintext, password string) (string, error)

	// Decrypt opens a blob produced by Encrypt (or the legacy format). Any
	// failure, including a wrong password, is reported as ErrDecryption.
	Decrypt(ciphertext, password string) (string, error)
}
