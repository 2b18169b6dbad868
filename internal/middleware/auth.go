package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const sessionKey = "session"

type SessionResolver interface {
	ResolveSession(ctx context.Context, userID string) (domain.Session, error)
}

type claims struct {
	UID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator проверяет bearer-токены (HS256) и кладёт сессию в контекст.
// Роль берётся из базы, а не из токена.
type Authenticator struct {
	secret   []byte
	issuer   string
	resolver SessionResolver
}

func NewAuthenticator(secret, issuer string, resolver SessionResolver) *Authenticator {
	return &Authenticator{
		secret:   []byte(secret),
		issuer:   issuer,
		resolver: resolver,
	}
}

// VerifyJWT отклоняет запросы без валидного токена.
func (a *Authenticator) VerifyJWT() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		a.authenticate(c, header)
	}
}

// OptionalJWT пропускает анонимные запросы, но невалидный токен всё равно 401.
func (a *Authenticator) OptionalJWT() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		a.authenticate(c, header)
	}
}

func (a *Authenticator) authenticate(c *ginext.Context, header string) {
	uid, err := a.parse(header)
	if err != nil {
		abortUnauthorized(c, err.Error())
		return
	}

	session, err := a.resolver.ResolveSession(c.Request.Context(), uid)
	if err != nil {
		c.Set("error", err.Error())
		if errors.Is(err, domain.ErrUnauthorized) {
			abortUnauthorized(c, "unknown user")
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
		return
	}

	SetSession(c, session)
	c.Next()
}

func (a *Authenticator) parse(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("malformed authorization header")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	var cl claims
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), &cl, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid token")
	}

	uid := cl.UID
	if uid == "" {
		uid = cl.Subject
	}
	if uid == "" {
		return "", errors.New("missing uid")
	}

	return uid, nil
}

func abortUnauthorized(c *ginext.Context, msg string) {
	c.Set("error", msg)
	c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": msg})
}

func SetSession(c *ginext.Context, s domain.Session) {
	c.Set(sessionKey, s)
}

func GetSession(c *ginext.Context) (domain.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{}, false
	}
	s, ok := v.(domain.Session)
	return s, ok
}
