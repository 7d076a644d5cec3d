package dbHelpers

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

var (
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrProductUnavailable  = errors.New("product is not available")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryRouteTaken  = errors.New("category route already taken")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrEmailTaken          = errors.New("email address already taken")
	ErrAdminNotFound       = errors.New("admin user not found")
	ErrShopUserNotFound    = errors.New("shop user not found")
	ErrCartQuantityTooBig  = errors.New("cart quantity is too large")
	ErrOrderTotalTooBig    = errors.New("order total is too large")
)

// postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
	numericOutOfRange   pq.ErrorCode = "22003"
)

// uniqueViolationConstraint returns the name of the violated unique constraint, if err is one
func uniqueViolationConstraint(err error) (string, bool) {
	pqErr, ok := errors.Cause(err).(*pq.Error)
	if !ok || pqErr.Code != uniqueViolation {
		return "", false
	}
	return pqErr.Constraint, true
}

func isForeignKeyViolation(err error) bool {
	pqErr, ok := errors.Cause(err).(*pq.Error)
	return ok && pqErr.Code == foreignKeyViolation
}

func isNumericOutOfRange(err error) bool {
	pqErr, ok := errors.Cause(err).(*pq.Error)
	return ok && pqErr.Code == numericOutOfRange
}

// mapConstraintError turns unique violations on known constraints into typed errors
func mapConstraintError(err error, constraints map[string]error) error {
	constraint, ok := uniqueViolationConstraint(err)
	if !ok {
		return err
	}
	if typed, found := constraints[constraint]; found {
		return typed
	}
	return err
}
