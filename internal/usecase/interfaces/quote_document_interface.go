package interfaces

import "meshguard_api/internal/domain/entities"

// IQuoteDocumentGenerator renders a printable quote (PDF) for the customer.
type IQuoteDocumentGenerator interface {
	Generate(q entities.QuoteWithOwner) ([]byte, error)
}
