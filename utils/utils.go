package utils

import (
	rndm "math/rand"
	"net/http"
	"strings"

	"dreamtrip/globals"
	"dreamtrip/middleware"

	"github.com/google/uuid"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

func GetUUID() string {
	return uuid.New().String()
}

// --- Request Helpers ---

func GetUserIDFromRequest(r *http.Request) string {
	ctx := r.Context()
	if requestingUserID, ok := ctx.Value(globals.UserIDKey).(string); ok && requestingUserID != "" {
		return requestingUserID
	}
	// WebSocket clients cannot set headers, so the token rides the query
	// string and is validated here rather than in the auth middleware.
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		if t := r.URL.Query().Get("token"); t != "" {
			tokenString = "Bearer " + t
		}
	}
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		return ""
	}
	return claims.UserID
}

func GetUsernameFromRequest(r *http.Request) string {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		return ""
	}
	return claims.Username
}

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}

// Truncate cuts s to at most n bytes, used for prompt excerpts.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
