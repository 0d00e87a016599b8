package service

import (
	"github.com/golang-jwt/jwt/v5"

	"studyhall/internal/platform/clock"
)

// TokenService inspects stored tokens without verifying them. Verification is
// the server's job; the client only wants to know whether a stored token is
// already past its exp claim, to skip a doomed request and go straight to a
// fresh login.
type TokenService struct {
	clk    clock.Clock
	parser *jwt.Parser
}

func NewTokenService(clk clock.Clock) *TokenService {
	return &TokenService{clk: clk, parser: jwt.NewParser()}
}

// Expired reports whether the token carries an exp claim in the past. Opaque
// or claim-less tokens count as live.
func (s *TokenService) Expired(raw string) bool {
	token, _, err := s.parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !s.clk.Now().Before(exp.Time)
}
