package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/Yash22022006-glitch/Student-Attendence/core"
	"github.com/Yash22022006-glitch/Student-Attendence/core/session"
)

const sessionTokenKey = "sessionToken"

// Claims represents the session handle transmitted via a JWT. Roles are
// presentational only; nothing here grants permissions.
type Claims struct {
	jwt.StandardClaims
	SessionID string `json:"sid"`
	Role      string `json:"role,omitempty"`
}

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    sessionTokenKey,
		Claims:        new(Claims),
	}
}

func getSessionClaims(sess session.Session, conf *core.Config) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   sess.User.ID,
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		SessionID: sess.Token,
		Role:      sess.User.Role.String(),
	}
}

// generateToken generates a signed JWT token string representing the session Claims.
func generateToken(conf *core.Config, claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(middleware.AlgorithmHS256)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(sessionTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errNoSession
}

func getContextSession(ctx echo.Context, sessions *session.Manager) (session.Session, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return session.Session{}, err
	}
	sess, err := sessions.Get(claims.SessionID)
	if err != nil {
		return session.Session{}, errNoSession
	}
	return sess, nil
}
