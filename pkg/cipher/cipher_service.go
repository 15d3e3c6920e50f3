package cipher

import (
	"Inventory-API/domain"
	"bytes"
	"crypto/aes"
	"encoding/base64"
)

type (
	// CipherService encrypts and decrypts stored user passwords. The cipher
	// is deliberately reversible (AES-ECB, PKCS#7 padding, base64 output):
	// login compares the decrypted plaintext byte-for-byte.
	CipherService interface {
		Encrypt(plaintext string) (string, error)
		Decrypt(ciphertext string) (string, error)
	}

	cipherService struct {
		key []byte
	}
)

const blockSize = aes.BlockSize

func NewCipherService(key string) CipherService {
	return &cipherService{key: []byte(key)}
}

func (s *cipherService) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", domain.ErrEncryptPassword
	}

	padded := pad([]byte(plaintext))
	encrypted := make([]byte, len(padded))
	for i := 0; i < len(padded); i += blockSize {
		block.Encrypt(encrypted[i:i+blockSize], padded[i:i+blockSize])
	}
	return base64.StdEncoding.EncodeToString(encrypted), nil
}

func (s *cipherService) Decrypt(ciphertext string) (string, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", domain.ErrDecryptPassword
	}

	encrypted, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", domain.ErrDecryptPassword
	}
	if len(encrypted) == 0 || len(encrypted)%blockSize != 0 {
		return "", domain.ErrDecryptPassword
	}

	decrypted := make([]byte, len(encrypted))
	for i := 0; i < len(encrypted); i += blockSize {
		block.Decrypt(decrypted[i:i+blockSize], encrypted[i:i+blockSize])
	}

	plaintext, err := unpad(decrypted)
	if err != nil {
		return "", domain.ErrDecryptPassword
	}
	return string(plaintext), nil
}

func pad(data []byte) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func unpad(data []byte) ([]byte, error) {
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, domain.ErrDecryptPassword
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, domain.ErrDecryptPassword
		}
	}
	return data[:len(data)-padding], nil
}
