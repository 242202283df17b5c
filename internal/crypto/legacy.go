package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"fmt"
	"unicode/utf8"
)

// The browser build stored vaults with CryptoJS.AES.encrypt(text, password),
// which writes the OpenSSL "Salted__" layout: magic | 8-byte salt | AES-256-CBC
// ciphertext, with key and IV from EVP_BytesToKey(MD5, one iteration).
// These blobs are only ever decrypted.
var legacyMagic = []byte("Salted__")

const legacySaltLen = 8

func isLegacy(blob []byte) bool {
	return bytes.HasPrefix(blob, legacyMagic)
}

// decryptLegacy has no integrity tag to rely on. Wrong passwords are caught by
// the padding and UTF-8 checks here, and by structural validation upstream.
func decryptLegacy(blob []byte, password string) (string, error) {
	body := blob[len(legacyMagic):]
	if len(body) < legacySaltLen+aes.BlockSize {
		return "", fmt.Errorf("%w: legacy blob too short", ErrDecryption)
	}

	salt := body[:legacySaltLen]
	ct := body[legacySaltLen:]
	if len(ct)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: legacy blob not block aligned", ErrDecryption)
	}

	key, iv := evpBytesToKey([]byte(password), salt, 32, aes.BlockSize)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ct)

	plain, err = pkcs7Unpad(plain)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: legacy plaintext is not utf-8", ErrDecryption)
	}

	return string(plain), nil
}

// evpBytesToKey mirrors OpenSSL's EVP_BytesToKey with MD5 and count 1.
func evpBytesToKey(password, salt []byte, keyLen, ivLen int) ([]byte, []byte) {
	var derived, prev []byte
	for len(derived) < keyLen+ivLen {
		h := md5.New()
		h.Write(prev)
		h.Write(password)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}
	return derived[:keyLen], derived[keyLen : keyLen+ivLen]
}

func pkcs7Unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty legacy plaintext", ErrDecryption)
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, fmt.Errorf("%w: bad padding", ErrDecryption)
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrDecryption)
		}
	}
	return b[:len(b)-n], nil
}
