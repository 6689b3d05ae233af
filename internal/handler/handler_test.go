package handler

import (
	"errors"
	"net/http"
	"testing"

	"supportcenter/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		apperror.Validation("bad"):                    http.StatusBadRequest,
		apperror.NotFound("role", "x"):                http.StatusNotFound,
		apperror.Conflict("dup"):                      http.StatusConflict,
		apperror.Storage("query", errors.New("boom")): http.StatusInternalServerError,
		errors.New("unclassified"):                    http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, statusFor(err), err.Error())
	}
}
