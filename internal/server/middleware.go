package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"
)

type principalKey struct{}

var errNoPrincipal = errors.New("token has no subject")

// loggerMiddleware logs every request with its request id and real client ip.
func loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			l := log.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"ip":         realip.FromRequest(r),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
			})

			if ww.Status() >= http.StatusInternalServerError {
				l.Warn("request failed")
				return
			}
			l.Debug("request served")
		}()

		next.ServeHTTP(ww, r)
	})
}

func bodyLimiterMiddleware(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// authMiddleware puts the subject of a HS256 bearer token to the request context as the caller principal.
func authMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := parseBearer(r.Header.Get("Authorization"), secret)
			if err != nil {
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey{}, principal)))
		})
	}
}

func parseBearer(header string, secret []byte) (string, error) {
	const prefix = "Bearer "

	if !strings.HasPrefix(header, prefix) {
		return "", errors.New("bearer token is required")
	}

	var claims jwt.RegisteredClaims
	if _, err := jwt.ParseWithClaims(strings.TrimPrefix(header, prefix), &claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})); err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", errNoPrincipal
	}

	return claims.Subject, nil
}

// getPrincipal returns caller's address put by authMiddleware.
func getPrincipal(ctx context.Context) string {
	v, _ := ctx.Value(principalKey{}).(string)
	return v
}
