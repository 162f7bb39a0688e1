package middleware

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/roamline/TripBooker/internal/auth"
	"github.com/roamline/TripBooker/internal/domain"
)

// Identities travel in HTTP-only cookies: one for end users, one for admins.
const (
	UserCookie  = "userToken"
	AdminCookie = "adminToken"

	identityKey = "identity"
)

// AuthUser accepts any valid identity from the userToken cookie.
func AuthUser(tokens *auth.Manager) ginext.HandlerFunc {
	return requireIdentity(tokens, UserCookie, "")
}

// AuthAdmin requires a valid adminToken cookie with the ADMIN role.
func AuthAdmin(tokens *auth.Manager) ginext.HandlerFunc {
	return requireIdentity(tokens, AdminCookie, domain.RoleAdmin)
}

func requireIdentity(tokens *auth.Manager, cookie string, role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		raw, err := c.Cookie(cookie)
		if err != nil || raw == "" {
			abortWith(c, domain.ErrUnauthorized)
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			abortWith(c, domain.ErrInvalidToken)
			return
		}

		if role != "" && claims.Role != role {
			abortWith(c, domain.ErrForbidden)
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

func abortWith(c *ginext.Context, err *domain.Error) {
	c.AbortWithStatusJSON(err.Status, ginext.H{"error": err.Message, "code": err.Code})
}

// Identity returns the claims stored by the auth middleware. Handlers behind
// the guard may assume it is present.
func Identity(c *ginext.Context) *auth.Claims {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
