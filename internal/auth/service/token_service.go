package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/quiz/internal/auth/domain"
	"github.com/allisson/quiz/internal/config"
	apperrors "github.com/allisson/quiz/internal/errors"
	userDomain "github.com/allisson/quiz/internal/user/domain"
)

// TokenServiceConfig configures the JWT token service.
type TokenServiceConfig struct {
	// SigningKey is the HMAC-SHA256 key, at least config.MinTokenSecretLength bytes.
	SigningKey []byte
	// Issuer is written to and required in the "iss" claim when non-empty.
	Issuer string
	// TTL is the lifetime of issued tokens.
	TTL time.Duration
	// ClockSkew tolerates tokens whose "iat" is slightly in the future. It is
	// never applied to "exp".
	ClockSkew time.Duration
	// Now overrides the clock, mainly in tests.
	Now func() time.Time
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// jwtTokenService implements TokenService with HS256-signed JWTs.
type jwtTokenService struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
	clockSkew  time.Duration
	now        func() time.Time
	parser     *jwt.Parser
}

// NewTokenService creates a TokenService. The configuration is read once and
// never changes afterwards.
func NewTokenService(cfg TokenServiceConfig) (TokenService, error) {
	if len(cfg.SigningKey) < config.MinTokenSecretLength {
		return nil, fmt.Errorf("token signing key must be at least %d bytes", config.MinTokenSecretLength)
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("token TTL must be positive")
	}
	if cfg.ClockSkew < 0 {
		return nil, errors.New("token clock skew must not be negative")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	key := make([]byte, len(cfg.SigningKey))
	copy(key, cfg.SigningKey)

	return &jwtTokenService{
		signingKey: key,
		issuer:     cfg.Issuer,
		ttl:        cfg.TTL,
		clockSkew:  cfg.ClockSkew,
		now:        now,
		parser:     jwt.NewParser(opts...),
	}, nil
}

// Issue signs a new token. Times are truncated to whole seconds, the
// resolution of JWT numeric dates, so exp is exactly iat + TTL.
func (s *jwtTokenService) Issue(subject string, role userDomain.Role) (*authDomain.IssuedToken, error) {
	if subject == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "token subject is required")
	}

	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign token")
	}

	return &authDomain.IssuedToken{
		Token:     signed,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// ExtractSubject reads "sub" without verifying the signature.
func (s *jwtTokenService) ExtractSubject(token string) (string, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", authDomain.ErrMalformedToken
	}
	if claims.Subject == "" {
		return "", authDomain.ErrMalformedToken
	}
	return claims.Subject, nil
}

// Verify checks the signature first, then expiry and the issue time.
func (s *jwtTokenService) Verify(token string) (*authDomain.TokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := s.parser.ParseWithClaims(token, claims, s.keyFunc)
	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !parsed.Valid || claims.Subject == "" || claims.IssuedAt == nil {
		return nil, authDomain.ErrMalformedToken
	}
	if claims.IssuedAt.After(s.now().Add(s.clockSkew)) {
		return nil, authDomain.ErrMalformedToken
	}

	return &authDomain.TokenClaims{
		Subject:   claims.Subject,
		Role:      userDomain.Role(claims.Role),
		Issuer:    claims.Issuer,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Validate fails closed on any verification error or subject mismatch.
func (s *jwtTokenService) Validate(token, expectedSubject string) bool {
	if expectedSubject == "" {
		return false
	}
	claims, err := s.Verify(token)
	if err != nil {
		return false
	}
	return claims.Subject == expectedSubject
}

func (s *jwtTokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
	}
	return s.signingKey, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return authDomain.ErrSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return authDomain.ErrExpired
	default:
		return authDomain.ErrMalformedToken
	}
}
