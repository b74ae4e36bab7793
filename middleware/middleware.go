package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"travelhub/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Username string   `json:"username"`
	UserID   string   `json:"userId"`
	Role     []string `json:"role"`
	jwt.RegisteredClaims
}

func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			http.Error(w, "Missing token", http.StatusUnauthorized)
			return
		}

		claims, err := ValidateJWT(tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
		next(w, r.WithContext(ctx), ps)
	}
}

// OptionalAuth attaches identity when a valid token is present and
// proceeds anonymously otherwise.
func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if claims, err := ValidateJWT(r.Header.Get("Authorization")); err == nil {
			ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
			r = r.WithContext(ctx)
		}
		next(w, r, ps)
	}
}

func ValidateJWT(tokenString string) (*Claims, error) {
	if len(tokenString) < 8 || !strings.HasPrefix(tokenString, "Bearer ") {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	return claims, nil
}

func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	return userID
}

func GetRoles(r *http.Request) []string {
	roles, _ := r.Context().Value(globals.RoleKey).([]string)
	return roles
}
