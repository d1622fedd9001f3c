package infra

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/grantscout/grantscout-backend/utils"
)

const generatedKeyBits = 2048

// ReadParseOrGenerateSigningKey loads the RSA key that signs session tokens, from the
// raw value or from a file. Without either, a throwaway key is generated, which
// invalidates every token on restart.
func ReadParseOrGenerateSigningKey(ctx context.Context, signingKey, signingKeyFile string) (*rsa.PrivateKey, error) {
	logger := utils.LoggerFromContext(ctx)

	switch {
	case signingKey != "":
		return ParseSigningKey(signingKey)
	case signingKeyFile != "":
		content, err := os.ReadFile(signingKeyFile)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read signing key file %s", signingKeyFile)
		}
		return ParseSigningKey(string(content))
	default:
		logger.WarnContext(ctx, "no signing key configured, generating an ephemeral one: tokens will not survive a restart")
		key, err := rsa.GenerateKey(rand.Reader, generatedKeyBits)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate signing key")
		}
		return key, nil
	}
}

func ParseSigningKey(privateKeyString string) (*rsa.PrivateKey, error) {
	// docker-compose escapes the newlines of multi-line env variables
	privateKeyString = strings.ReplaceAll(privateKeyString, "\\n", "\n")
	block, _ := pem.Decode([]byte(privateKeyString))
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing RSA private key")
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, errors.Wrap(err, "can't load PKCS1 signing key")
		}
		return key, nil
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, errors.Wrap(err, "can't load PKCS8 signing key")
		}
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("signing key is not an RSA key")
		}
		return rsaKey, nil
	default:
		return nil, errors.Newf("unexpected PEM block type %s", block.Type)
	}
}
