package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the typed JWT payload used by the access control layer.
//
// It extends the standard registered claim set (sub, exp, iat, iss) with
// the role claim. The subject carries the principal's unique identity:
// the username for admins and the email address for students.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Role is the principal role embedded in the token. The guard
	// matches it exhaustively against the closed [Role] enumeration.
	Role Role `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication
// flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and carries the decoded [TokenClaims] for typed claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded typed claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// Subject returns the principal identity stored in the "sub" claim:
// the username for admin tokens, the email address for student tokens.
func (t *Token) Subject() string {
	return t.Claims.Subject
}

// Role returns the principal role stored in the role claim.
func (t *Token) Role() Role {
	return t.Claims.Role
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
