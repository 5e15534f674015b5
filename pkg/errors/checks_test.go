package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAs(t *testing.T) {
	t.Parallel()

	t.Run("direct", func(t *testing.T) {
		t.Parallel()
		orig := Validation("bad")
		e, ok := As(orig)
		require.True(t, ok)
		assert.Same(t, orig, e)
	})

	t.Run("through a foreign wrapper", func(t *testing.T) {
		t.Parallel()
		orig := NotFound("gone")
		wrapped := fmt.Errorf("outer: %w", orig)
		e, ok := As(wrapped)
		require.True(t, ok)
		assert.Same(t, orig, e)
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()
		e, ok := As(stderrors.New("plain"))
		assert.False(t, ok)
		assert.Nil(t, e)
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		_, ok := As(nil)
		assert.False(t, ok)
	})
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, KindPermission, KindOf(Permission("denied")))
	assert.Equal(t, Kind(""), KindOf(stderrors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"validation matches", Validation("x"), IsValidation, true},
		{"validation rejects other kinds", NotFound("x"), IsValidation, false},
		{"not found matches", NotFound("x"), IsNotFound, true},
		{"file not found is not plain not found", FileNotFound("x"), IsNotFound, false},
		{"file not found matches", FileNotFound("x"), IsFileNotFound, true},
		{"permission matches", Permission("x"), IsPermission, true},
		{"json parse matches", JSONParse("x"), IsJSONParse, true},
		{"file io matches", FileIO("x"), IsFileIO, true},
		{"wrapped matches", Wrap(Validation("x"), "op", nil), IsWrapped, true},
		{"uncategorized matches", Uncategorized("x"), IsUncategorized, true},
		{"plain error matches nothing", stderrors.New("x"), IsValidation, false},
		{"nil matches nothing", nil, IsNotFound, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestHasKind_ThroughChain(t *testing.T) {
	t.Parallel()
	inner := JSONParse("unexpected token")
	outer := fmt.Errorf("loading config: %w", inner)

	assert.True(t, HasKind(outer, KindJSONParse))
	assert.False(t, HasKind(outer, KindValidation))
}
