package domain

import (
	financeErrors "github.com/sebuszqo/PersonalLedger/internal/finance/errors"
)

// Owned is implemented by every entity bound to exactly one owning user.
type Owned interface {
	OwnerID() string
}

// RequireOwner is the single ownership gate shared by both ledgers. Callers
// resolve existence first, so a failure here always means the entity exists
// but belongs to someone else.
func RequireOwner(resource Owned, userID, resourceName string) error {
	if resource.OwnerID() != userID {
		return financeErrors.NewForbiddenError(resourceName)
	}
	return nil
}
