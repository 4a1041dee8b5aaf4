package token

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventhub/internal/config"
	"eventhub/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload carried by both access and refresh tokens.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type keyPair struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
	ttl     time.Duration
}

// Issuer signs and verifies session tokens. Access and refresh tokens use
// independent RSA key pairs, so compromise of one pair never unlocks the
// other.
type Issuer struct {
	access  keyPair
	refresh keyPair
}

// NewIssuer builds an issuer from in-memory keys. Used directly by tests;
// production code goes through NewIssuerFromFiles.
func NewIssuer(accessPriv, refreshPriv *rsa.PrivateKey, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		access:  keyPair{private: accessPriv, public: &accessPriv.PublicKey, ttl: accessTTL},
		refresh: keyPair{private: refreshPriv, public: &refreshPriv.PublicKey, ttl: refreshTTL},
	}
}

func NewIssuerFromFiles(cfg *config.Config) (*Issuer, error) {
	accessPriv, err := loadPrivateKey(cfg.JWTKeys.AccessPrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load access private key: %w", err)
	}

	accessPub, err := loadPublicKey(cfg.JWTKeys.AccessPublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load access public key: %w", err)
	}

	refreshPriv, err := loadPrivateKey(cfg.JWTKeys.RefreshPrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load refresh private key: %w", err)
	}

	refreshPub, err := loadPublicKey(cfg.JWTKeys.RefreshPublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load refresh public key: %w", err)
	}

	return &Issuer{
		access:  keyPair{private: accessPriv, public: accessPub, ttl: cfg.AccessTokenDuration},
		refresh: keyPair{private: refreshPriv, public: refreshPub, ttl: cfg.RefreshTokenDuration},
	}, nil
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
}

func loadPublicKey(path string) (*rsa.PublicKey, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return jwt.ParseRSAPublicKeyFromPEM(pemBytes)
}

func (i *Issuer) AccessTTL() time.Duration {
	return i.access.ttl
}

func (i *Issuer) RefreshTTL() time.Duration {
	return i.refresh.ttl
}

func (i *Issuer) IssueAccess(user *models.User) (string, error) {
	return issue(user, i.access)
}

func (i *Issuer) IssueRefresh(user *models.User) (string, error) {
	return issue(user, i.refresh)
}

func (i *Issuer) VerifyAccess(tokenString string) (*Claims, error) {
	return verify(tokenString, i.access.public)
}

func (i *Issuer) VerifyRefresh(tokenString string) (*Claims, error) {
	return verify(tokenString, i.refresh.public)
}

func issue(user *models.User, pair keyPair) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:   user.UserID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(pair.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)

	tokenString, err := token.SignedString(pair.private)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func verify(tokenString string, public *rsa.PublicKey) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return public, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
