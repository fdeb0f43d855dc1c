package middleware

import (
	"net/http"
	"strings"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
	"github.com/VLP-TECH/real-state-enrique-sub000/internal/usecase/interfaces"
	"github.com/VLP-TECH/real-state-enrique-sub000/pkg"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
	errInactive     = pkg.NewDomainErrorSimple("ACCOUNT_INACTIVE", "This account has been deactivated", http.StatusForbidden)
)

// Session is the authenticated request context: the loaded profile plus its
// resolved capabilities, computed once per request.
type Session struct {
	Profile      entities.Profile
	Capabilities entities.Capabilities
}

// WithSession stores a session on the context. Authenticate calls it after
// verifying the token; handler tests call it directly.
func WithSession(c *gin.Context, s Session) {
	c.Set(sessionKey, s)
}

// SessionFrom returns the session stored by Authenticate.
func SessionFrom(c *gin.Context) (Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}

// AuthMiddleware verifies bearer tokens and resolves them to profiles.
type AuthMiddleware struct {
	tokens   interfaces.ITokenManager
	profiles interfaces.IProfileRepository
}

func NewAuthMiddleware(tokens interfaces.ITokenManager, profiles interfaces.IProfileRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, profiles: profiles}
}

// Authenticate parses the Authorization header, verifies the token and loads
// the profile into the request context. It does not check the active flag;
// route groups layer RequireActive and friends on top.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		profileID, err := m.tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		profile, err := m.profiles.GetByID(c.Request.Context(), profileID)
		if err != nil || profile.ID == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		WithSession(c, Session{
			Profile:      profile,
			Capabilities: entities.ResolveCapabilities(&profile),
		})
		c.Next()
	}
}

// AuthenticateOptional populates the session when a valid bearer token is
// present and lets the request through anonymously otherwise. Public pages
// that render extra content for signed-in callers use it.
func (m *AuthMiddleware) AuthenticateOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		profileID, err := m.tokens.Verify(token)
		if err != nil {
			c.Next()
			return
		}

		profile, err := m.profiles.GetByID(c.Request.Context(), profileID)
		if err != nil || profile.ID == "" {
			c.Next()
			return
		}

		WithSession(c, Session{
			Profile:      profile,
			Capabilities: entities.ResolveCapabilities(&profile),
		})
		c.Next()
	}
}

// RequireActive blocks deactivated accounts. Admins pass regardless of the
// active flag.
func RequireActive() gin.HandlerFunc {
	return requireCapability(func(s Session) bool {
		return s.Profile.Active || s.Capabilities.IsAdmin
	}, errInactive)
}

// RequireEditor admits editors and admins.
func RequireEditor() gin.HandlerFunc {
	return requireCapability(func(s Session) bool {
		return s.Capabilities.CanUploadSources
	}, errForbidden)
}

// RequireAdmin admits admins only.
func RequireAdmin() gin.HandlerFunc {
	return requireCapability(func(s Session) bool {
		return s.Capabilities.IsAdmin
	}, errForbidden)
}

func requireCapability(allowed func(Session) bool, appErr *pkg.AppError) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := SessionFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if !allowed(s) {
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
