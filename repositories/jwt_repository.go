package repositories

import (
	"crypto/rsa"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/grantscout/grantscout-backend/models"
)

const tokenIssuer = "grantscout"

var ValidationAlgo = jwt.SigningMethodRS256

// Claims carries the user email next to the registered claims. The subject is the user id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type JwtRepository struct {
	signingKey *rsa.PrivateKey
	validity   time.Duration
	now        func() time.Time
}

func NewJwtRepository(key *rsa.PrivateKey, validity time.Duration) *JwtRepository {
	return &JwtRepository{
		signingKey: key,
		validity:   validity,
		now:        time.Now,
	}
}

func (repo *JwtRepository) EncodeToken(identity models.Identity) (string, error) {
	issuedAt := repo.now()
	claims := &Claims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserId.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(repo.validity)),
		},
	}

	token := jwt.NewWithClaims(ValidationAlgo, claims)
	signed, err := token.SignedString(repo.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "could not sign token")
	}
	return signed, nil
}

func (repo *JwtRepository) ValidateToken(raw string) (models.Identity, error) {
	keyFunc := func(token *jwt.Token) (any, error) {
		return &repo.signingKey.PublicKey, nil
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, keyFunc,
		jwt.WithValidMethods([]string{ValidationAlgo.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(repo.now),
	)
	if err != nil {
		return models.Identity{}, errors.WithSecondaryError(models.ErrInvalidToken, err)
	}

	userId, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.Identity{}, errors.WithSecondaryError(models.ErrInvalidToken, err)
	}
	return models.Identity{UserId: userId, Email: claims.Email}, nil
}
