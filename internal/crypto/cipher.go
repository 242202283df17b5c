// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Blob layout (before base64):
//
//	magic "NV" | version | time (u32 BE) | memory KiB (u32 BE) | threads | salt | nonce | ciphertext+tag
//
// The header is authenticated as GCM additional data.
const (
	formatVersion = 1

	headerLen = 2 + 1 + 4 + 4 + 1
	saltLen   = 16
	nonceLen  = 12
	keyLen    = 32 // AES-256
	tagLen    = 16
)

var magic = []byte("NV")

// Upper bounds accepted from a blob header. A header above them is treated as
// corrupt rather than handed to argon2.
const (
	maxArgonTime      = 16
	maxArgonMemoryKiB = 1 << 20 // 1 GiB
	maxArgonThreads   = 64
)

// Argon2Params tunes the Argon2id key derivation used by Encrypt.
type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultArgon2Params returns the OWASP (2024) recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:      1,
		MemoryKiB: 64 * 1024,
		Threads:   4,
	}
}

func (p Argon2Params) valid() bool {
	return p.Time >= 1 && p.Time <= maxArgonTime &&
		p.Threads >= 1 && p.Threads <= maxArgonThreads &&
		p.MemoryKiB >= 8*uint32(p.Threads) && p.MemoryKiB <= maxArgonMemoryKiB
}

// passwordCipher is the private implementation of [Cipher].
type passwordCipher struct {
	params Argon2Params
	rand   io.Reader
}

// NewCipher constructs a [Cipher] that encrypts with the given Argon2id
// parameters. Zero or out-of-range parameters fall back to
// [DefaultArgon2Params].
func NewCipher(params Argon2Params) Cipher {
	if !params.valid() {
		params = DefaultArgon2Params()
	}

	return &passwordCipher{
		params: params,
		rand:   rand.Reader,
	}
}

// Encrypt implements [Cipher]. Every call draws a new salt and nonce, so
// encrypting the same plaintext twice yields different blobs.
func (c *passwordCipher) Encrypt(plaintext, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	header := encodeHeader(c.params)

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := newGCM(deriveKey(password, salt, c.params))
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, headerLen+saltLen+nonceLen+len(plaintext)+tagLen)
	blob = append(blob, header...)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), header)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Cipher].
func (c *passwordCipher) Decrypt(ciphertext, password string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryption, err)
	}

	if isLegacy(blob) {
		return decryptLegacy(blob, password)
	}

	if len(blob) < headerLen+saltLen+nonceLen+tagLen {
		return "", fmt.Errorf("%w: blob too short", ErrDecryption)
	}

	header := blob[:headerLen]
	params, err := decodeHeader(header)
	if err != nil {
		return "", err
	}

	salt := blob[headerLen : headerLen+saltLen]
	nonce := blob[headerLen+saltLen : headerLen+saltLen+nonceLen]
	sealed := blob[headerLen+saltLen+nonceLen:]

	gcm, err := newGCM(deriveKey(password, salt, params))
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, header)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return string(plaintext), nil
}

func deriveKey(password string, salt []byte, p Argon2Params) []byte {
	return argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, keyLen)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func encodeHeader(p Argon2Params) []byte {
	header := make([]byte, headerLen)
	copy(header, magic)
	header[2] = formatVersion
	binary.BigEndian.PutUint32(header[3:7], p.Time)
	binary.BigEndian.PutUint32(header[7:11], p.MemoryKiB)
	header[11] = p.Threads
	return header
}

func decodeHeader(header []byte) (Argon2Params, error) {
	if !bytes.Equal(header[:2], magic) {
		return Argon2Params{}, fmt.Errorf("%w: unknown format", ErrDecryption)
	}
	if header[2] != formatVersion {
		return Argon2Params{}, fmt.Errorf("%w: unsupported version %d", ErrDecryption, header[2])
	}

	p := Argon2Params{
		Time:      binary.BigEndian.Uint32(header[3:7]),
		MemoryKiB: binary.BigEndian.Uint32(header[7:11]),
		Threads:   header[11],
	}
	if !p.valid() {
		return Argon2Params{}, fmt.Errorf("%w: invalid key derivation parameters", ErrDecryption)
	}

	return p, nil
}
