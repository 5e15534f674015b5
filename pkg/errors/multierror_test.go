package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiError_Accumulation(t *testing.T) {
	t.Parallel()
	m := NewMultiError("validate_user_data")

	assert.False(t, m.HasErrors())
	assert.Equal(t, 0, m.Len())

	m.Append(Validation("name is required"))
	assert.True(t, m.HasErrors())
	assert.Equal(t, 1, m.Len())

	m.Append(Validation("invalid email format"))
	assert.Equal(t, 2, m.Len())

	// HasErrors is true exactly when the sequence is non-empty; appending
	// never shrinks it.
	assert.True(t, m.HasErrors())
	assert.Equal(t, m.HasErrors(), m.Len() > 0)

	errs := m.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "validation_error: name is required", errs[0].Error())
	assert.Equal(t, "validation_error: invalid email format", errs[1].Error())
}

func TestMultiError_AppendIgnoresNil(t *testing.T) {
	t.Parallel()
	m := NewMultiError("op")
	m.Append(nil)
	assert.False(t, m.HasErrors())

	m.Append(nil, Validation("x"), nil)
	assert.Equal(t, 1, m.Len())
}

func TestMultiError_ErrorsReturnsCopy(t *testing.T) {
	t.Parallel()
	m := NewMultiError("op")
	m.Append(Validation("a"), Validation("b"))

	errs := m.Errors()
	errs[0] = Validation("tampered")

	assert.Equal(t, "validation_error: a", m.Errors()[0].Error())
}

func TestMultiError_Error(t *testing.T) {
	t.Parallel()
	m := NewMultiError("create_users")
	assert.Equal(t, "create_users: no errors", m.Error())

	m.Append(Validation("name is required"), NotFound("user not found"))
	assert.Equal(t,
		"create_users: 2 error(s): validation_error: name is required; not_found_error: user not found",
		m.Error())
}

func TestMultiError_Unwrap(t *testing.T) {
	t.Parallel()
	target := NotFound("user not found")
	m := NewMultiError("op")
	m.Append(Validation("x"), target)

	// errors.Is traverses Unwrap() []error containers.
	assert.True(t, stderrors.Is(m, target))

	var e *Error
	assert.True(t, stderrors.As(m, &e))
}

func TestMultiError_ErrOrNil(t *testing.T) {
	t.Parallel()
	m := NewMultiError("op")
	assert.NoError(t, m.ErrOrNil())

	m.Append(Validation("x"))
	assert.Error(t, m.ErrOrNil())
}
