package interfaces

import "meshguard_api/internal/domain/entities"

// ITokenIssuer signs and verifies stateless session tokens.
type ITokenIssuer interface {
	Issue(actor entities.Actor) (string, error)
	Parse(token string) (entities.Actor, error)
}
