package repository

import (
	"fmt"

	"meshguard_api/internal/usecase/interfaces"
)

func errDuplicate(cause error) error {
	return fmt.Errorf("%w: %v", interfaces.ErrDuplicateKey, cause)
}
