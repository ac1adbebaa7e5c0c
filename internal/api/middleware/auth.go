package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/lubooking/booking-service/internal/api/handlers"
)

type contextKey struct{ name string }

// userIDKey ключ userID в контексте запроса
var userIDKey = &contextKey{"userID"}

const bearerPrefix = "Bearer "

// Auth проверяет Bearer JWT и кладёт subject токена в контекст запроса.
// Токены выпускает внешний провайдер аутентификации; сервис только
// проверяет подпись (HS256) и issuer.
func Auth(secret, issuer string) mux.MiddlewareFunc {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
	}
	if issuer != "" {
		options = append(options, jwt.WithIssuer(issuer))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				handlers.RespondUnauthorized(w, "missing bearer token")
				return
			}

			claims := &jwt.RegisteredClaims{}
			_, err := jwt.ParseWithClaims(strings.TrimPrefix(header, bearerPrefix), claims, keyFunc, options...)
			if err != nil {
				handlers.RespondUnauthorized(w, "invalid token")
				return
			}

			if claims.Subject == "" {
				handlers.RespondUnauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserID кладет идентификатор пользователя в контекст запроса
// в обход Auth. Нужен хендлерным тестам.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID извлекает идентификатор пользователя, положенный Auth
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
