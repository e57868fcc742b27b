package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Lagicart/SalesManager-pro-sub000/internal/apierror"
	"github.com/Lagicart/SalesManager-pro-sub000/internal/model"
)

const ClaimsKey = "claims"

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	Email string `json:"email"`
	Nome  string `json:"nome"`
	Ruolo string `json:"ruolo"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticazione richiesta"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token non valido o scaduto"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose token role is not in the allowed list.
// The store enforces the same rules again at its own boundary; this is the
// HTTP-visible half of the contract.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*JWTClaims)
		if !ok || !allowed[claims.Ruolo] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permessi insufficienti"))
			return
		}
		c.Next()
	}
}

// GetAttore returns the acting operator identity from the request claims.
func GetAttore(c *gin.Context) model.Attore {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	if claims == nil {
		return model.Attore{}
	}
	return model.Attore{Email: claims.Email, Ruolo: claims.Ruolo}
}
