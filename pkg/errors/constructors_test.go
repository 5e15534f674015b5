package errors

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	before := time.Now().UTC()
	err := New(KindValidation, "email is required")
	after := time.Now().UTC()

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "email is required", err.Message)
	assert.Equal(t, "validation_error: email is required", err.Error())
	assert.Nil(t, err.Cause)
	assert.Empty(t, err.Context)

	ts, parseErr := time.Parse(time.RFC3339Nano, err.Timestamp)
	require.NoError(t, parseErr, "timestamp must be RFC 3339")
	assert.False(t, ts.Before(before.Truncate(time.Second)))
	assert.False(t, ts.After(after.Add(time.Second)))

	assert.True(t, strings.HasPrefix(err.Source, "constructors_test.go:"),
		"source should be the caller's file:line, got %q", err.Source)
}

func TestNew_TimestampCapturedOnce(t *testing.T) {
	t.Parallel()
	err := New(KindValidation, "x")
	first := err.Timestamp
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, first, err.Timestamp)
	assert.Equal(t, first, err.WithContextValue("k", "v").Timestamp)
}

func TestNew_ErrorID(t *testing.T) {
	t.Parallel()
	a := New(KindValidation, "x")
	b := New(KindValidation, "x")

	idA, ok := a.Metadata[MetadataErrorID].(string)
	require.True(t, ok, "every constructed error carries an error_id")
	_, parseErr := uuid.Parse(idA)
	require.NoError(t, parseErr)

	assert.NotEqual(t, idA, b.Metadata[MetadataErrorID], "error ids are unique per construction")
}

func TestNewf(t *testing.T) {
	t.Parallel()
	err := Newf(KindNotFound, "user %q not found", "u-42")
	assert.Equal(t, `not_found_error: user "u-42" not found`, err.Error())
}

func TestKindConstructors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  *Error
		kind Kind
		want string
	}{
		{"validation", Validation("email is required"), KindValidation, "validation_error: email is required"},
		{"validationf", Validationf("too long by %d", 3), KindValidation, "validation_error: too long by 3"},
		{"not found", NotFound("user not found"), KindNotFound, "not_found_error: user not found"},
		{"not foundf", NotFoundf("user %d", 7), KindNotFound, "not_found_error: user 7"},
		{"file not found", FileNotFound("missing config"), KindFileNotFound, "file_not_found_error: missing config"},
		{"permission", Permission("denied"), KindPermission, "permission_error: denied"},
		{"json parse", JSONParse("unexpected end"), KindJSONParse, "json_parse_error: unexpected end"},
		{"file io", FileIO("short write"), KindFileIO, "file_io_error: short write"},
		{"configuration", Configuration("bad loader use"), KindConfiguration, "configuration_error: bad loader use"},
		{"uncategorized", Uncategorized("mystery"), KindUncategorized, "uncategorized_error: mystery"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.want, tt.err.Error())
			assert.NotEmpty(t, tt.err.Timestamp)
			assert.NotEmpty(t, tt.err.Source)
		})
	}
}

func TestFrom(t *testing.T) {
	t.Parallel()

	t.Run("nil returns nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, From(nil))
	})

	t.Run("structured error passes through", func(t *testing.T) {
		t.Parallel()
		orig := Validation("bad input")
		assert.Same(t, orig, From(orig))
	})

	t.Run("structured error found through wrapping", func(t *testing.T) {
		t.Parallel()
		orig := Validation("bad input")
		wrapped := stderrors.Join(stderrors.New("outer"), orig)
		assert.Same(t, orig, From(wrapped))
	})

	t.Run("foreign error becomes uncategorized with cause", func(t *testing.T) {
		t.Parallel()
		foreign := stderrors.New("boom")
		e := From(foreign)
		assert.Equal(t, KindUncategorized, e.Kind)
		assert.Equal(t, "uncategorized_error: boom", e.Error())
		assert.Equal(t, foreign, e.Cause)
	})
}
