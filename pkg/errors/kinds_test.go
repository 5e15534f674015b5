package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "validation_error", KindValidation.String())
	assert.Equal(t, "uncategorized_error", KindUncategorized.String())
}

func TestKind_HTTPStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		kind Kind
		want int
	}{
		{"validation", KindValidation, http.StatusBadRequest},
		{"json parse", KindJSONParse, http.StatusBadRequest},
		{"not found", KindNotFound, http.StatusNotFound},
		{"file not found", KindFileNotFound, http.StatusNotFound},
		{"permission", KindPermission, http.StatusForbidden},
		{"file io", KindFileIO, http.StatusInternalServerError},
		{"wrapped", KindWrapped, http.StatusInternalServerError},
		{"configuration", KindConfiguration, http.StatusInternalServerError},
		{"uncategorized", KindUncategorized, http.StatusInternalServerError},
		{"unknown kind", Kind("custom_error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.kind.HTTPStatus())
			assert.Equal(t, tt.want, (&Error{Kind: tt.kind, Message: "x"}).HTTPStatus())
		})
	}
}
