// Package signer provides core.Signer implementations for Binance authenticated endpoints.
//
// Binance accepts three key types: HMAC-SHA256 secrets (hex signature), Ed25519 keys and
// RSA keys (base64 signatures). The signed payload is always the canonical query string.
package signer

import (
	"crypto"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"

	"fapi/pkg/core"
)

var (
	_ core.Signer = (*HMAC)(nil)
	_ core.Signer = (*Ed25519)(nil)
	_ core.Signer = (*RSA)(nil)
)

// ErrEmptySecret is returned when an HMAC signer is built without a secret.
var ErrEmptySecret = errors.New("secret key is required for signing")

// HMAC signs payloads with HMAC-SHA256 and hex encodes the digest.
type HMAC struct {
	secret []byte
}

// NewHMAC returns an HMAC signer for the given API secret.
func NewHMAC(secret string) (*HMAC, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &HMAC{secret: []byte(secret)}, nil
}

func (s *HMAC) Sign(payload []byte) (string, error) {
	h := hmac.New(sha256.New, s.secret)
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Ed25519 signs payloads with an Ed25519 private key and base64 encodes the signature.
type Ed25519 struct {
	key ed25519.PrivateKey
}

// NewEd25519 returns an Ed25519 signer.
func NewEd25519(key ed25519.PrivateKey) (*Ed25519, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("ed25519 private key: invalid size %d", len(key))
	}
	return &Ed25519{key: key}, nil
}

// ParseEd25519PEM parses a PKCS#8 "PRIVATE KEY" PEM block into an Ed25519 signer.
func ParseEd25519PEM(data []byte) (*Ed25519, error) {
	parsed, err := parsePKCS8(data)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("pem: expected ed25519 key, got %T", parsed)
	}
	return NewEd25519(key)
}

func (s *Ed25519) Sign(payload []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(ed25519.Sign(s.key, payload)), nil
}

// RSA signs payloads with RSASSA-PKCS1-v1_5 over SHA-256 and base64 encodes the signature.
type RSA struct {
	key *rsa.PrivateKey
}

// NewRSA returns an RSA signer.
func NewRSA(key *rsa.PrivateKey) (*RSA, error) {
	if key == nil {
		return nil, errors.New("rsa private key is nil")
	}
	return &RSA{key: key}, nil
}

// ParseRSAPEM parses a PKCS#8 "PRIVATE KEY" or PKCS#1 "RSA PRIVATE KEY" PEM block into an RSA signer.
func ParseRSAPEM(data []byte) (*RSA, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("pem: no block found")
	}
	if block.Type == "RSA PRIVATE KEY" {
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse pkcs1 key: %w", err)
		}
		return NewRSA(key)
	}

	parsed, err := parsePKCS8(data)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("pem: expected rsa key, got %T", parsed)
	}
	return NewRSA(key)
}

func (s *RSA) Sign(payload []byte) (string, error) {
	digest := sha256.Sum256(payload)
	sig, err := rsa.SignPKCS1v15(rand.Reader, s.key, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("rsa sign: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

func parsePKCS8(data []byte) (any, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("pem: no block found")
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse pkcs8 key: %w", err)
	}
	return key, nil
}
