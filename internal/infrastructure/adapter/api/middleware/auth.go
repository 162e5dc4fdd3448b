package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// Headers set by the authenticating gateway
const (
	HeaderAuthSubject = "X-Auth-Subject"
	HeaderAuthEmail   = "X-Auth-Email"
	HeaderAuthName    = "X-Auth-Name"
	HeaderAuthPhone   = "X-Auth-Phone"
)

const identityKey = "identity"

// Authenticate builds the caller's identity from the gateway headers.
// Requests without a usable email are rejected with 401.
func Authenticate(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := entity.Identity{
			Subject:     c.GetHeader(HeaderAuthSubject),
			Email:       c.GetHeader(HeaderAuthEmail),
			DisplayName: c.GetHeader(HeaderAuthName),
			Phone:       c.GetHeader(HeaderAuthPhone),
		}.Normalize()

		if err := identity.Validate(); err != nil {
			logger.Warn("Rejected unauthenticated request", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": RequestID(c),
			})
			AbortWithError(c, errs.ErrUnauthenticated)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity attached by Authenticate
func IdentityFrom(c *gin.Context) (entity.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return entity.Identity{}, false
	}
	identity, ok := value.(entity.Identity)
	return identity, ok
}
