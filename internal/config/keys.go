package config

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const rsaKeyBits = 2048

type signingKeys struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
}

// loadSigningKeys decodes the RS256 key pair. Each value is a PEM block,
// raw or base64 encoded; PKCS#1 and PKCS#8 private keys are accepted. The public key is derived when only the private key
// is given.
func loadSigningKeys(privateValue, publicValue string, production bool) (signingKeys, error) {
	if privateValue == "" {
		if publicValue != "" {
			return signingKeys{}, errors.New("JWT_PUBLIC_KEY is set without JWT_PRIVATE_KEY")
		}
		if production {
			return signingKeys{}, errors.New("JWT_PRIVATE_KEY must be set in production")
		}
		slog.Warn("JWT_PRIVATE_KEY not set, generating an ephemeral RSA key pair; tokens will not survive a restart")
		private, public, err := GenerateRSAKeyPair()
		return signingKeys{private: private, public: public}, err
	}

	privatePEM, err := decodeKeyValue(privateValue)
	if err != nil {
		return signingKeys{}, fmt.Errorf("JWT_PRIVATE_KEY: %w", err)
	}
	private, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return signingKeys{}, fmt.Errorf("JWT_PRIVATE_KEY: %w", err)
	}

	if publicValue == "" {
		return signingKeys{private: private, public: &private.PublicKey}, nil
	}

	publicPEM, err := decodeKeyValue(publicValue)
	if err != nil {
		return signingKeys{}, fmt.Errorf("JWT_PUBLIC_KEY: %w", err)
	}
	public, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return signingKeys{}, fmt.Errorf("JWT_PUBLIC_KEY: %w", err)
	}
	if !private.PublicKey.Equal(public) {
		return signingKeys{}, errors.New("JWT_PUBLIC_KEY does not match JWT_PRIVATE_KEY")
	}

	return signingKeys{private: private, public: public}, nil
}

func decodeKeyValue(value string) ([]byte, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "-----BEGIN") {
		return []byte(value), nil
	}

	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("neither PEM nor base64: %w", err)
	}
	return decoded, nil
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}
