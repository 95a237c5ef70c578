// internal/access/token.go
//
// Entitlement token verification. The external purchase system signs an
// HS256 JWT whose "tier" claim names the subscription level; the boundary
// layer verifies it here and feeds the tier into CanAccess. Any failure —
// missing token, bad signature, expired, unknown tier — degrades to Basic
// rather than erroring: gameplay availability beats entitlement strictness.

package access

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// TierFromToken extracts the subscription tier from a signed entitlement
// token. Returns Basic on any verification or parse failure.
func TierFromToken(tokenString, secret string) Tier {
	if tokenString == "" {
		return Basic
	}
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		log.Debug().Err(err).Msg("entitlement token rejected, using basic tier")
		return Basic
	}
	name, _ := claims["tier"].(string)
	tier, err := ParseTier(name)
	if err != nil {
		log.Debug().Str("tier", name).Msg("unknown tier claim, using basic tier")
		return Basic
	}
	return tier
}
