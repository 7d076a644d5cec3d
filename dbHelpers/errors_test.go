package dbHelpers

import (
	"testing"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestMapConstraintError(t *testing.T) {
	usernameTaken := &pq.Error{Code: "23505", Constraint: "shop_users_username_key"}
	emailTaken := &pq.Error{Code: "23505", Constraint: "shop_users_email_key"}
	otherUnique := &pq.Error{Code: "23505", Constraint: "something_else_key"}
	notUnique := &pq.Error{Code: "23502", Constraint: "shop_users_username_key"}

	assert.Equal(t, ErrUsernameTaken, mapConstraintError(usernameTaken, shopUserConstraints))
	assert.Equal(t, ErrEmailTaken, mapConstraintError(errors.Wrap(emailTaken, "insert"), shopUserConstraints))
	assert.Equal(t, error(otherUnique), mapConstraintError(otherUnique, shopUserConstraints))
	assert.Equal(t, error(notUnique), mapConstraintError(notUnique, shopUserConstraints))
	assert.Equal(t, ErrCategoryRouteTaken,
		mapConstraintError(&pq.Error{Code: "23505", Constraint: "shop_categories_route_key"}, categoryConstraints))
	assert.Equal(t, ErrUsernameTaken,
		mapConstraintError(&pq.Error{Code: "23505", Constraint: "admin_users_username_key"}, adminConstraints))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, mapConstraintError(plain, shopUserConstraints))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(errors.Wrap(&pq.Error{Code: "23503"}, "insert")))
	assert.False(t, isForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(errors.New("boom")))
	assert.False(t, isForeignKeyViolation(nil))
}

func TestIsNumericOutOfRange(t *testing.T) {
	assert.True(t, isNumericOutOfRange(errors.Wrap(&pq.Error{Code: "22003"}, "update")))
	assert.False(t, isNumericOutOfRange(&pq.Error{Code: "23503"}))
	assert.False(t, isNumericOutOfRange(errors.New("boom")))
}
