package ports

import "github.com/mindmetrics/prediction-api/internal/core/domain"

// TokenService issues and validates the signed access/refresh tokens and
// generates opaque reset tokens. Access/refresh validity is stateless:
// signature plus expiry, nothing server-side.
type TokenService interface {
	IssueAccess(username string) (string, error)
	IssueRefresh(username string) (string, error)
	// Verify returns the subject username when token is well-formed, signed by
	// us, unexpired, and of the expected kind; domain.ErrInvalidToken otherwise.
	Verify(token string, kind domain.TokenKind) (string, error)
	// NewResetToken returns a cryptographically random opaque token,
	// unrelated to the signed-token mechanism.
	NewResetToken() (string, error)
}
