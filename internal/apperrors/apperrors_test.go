package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindClassification(t *testing.T) {
	err := NotFound("Video not found.")
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindForbidden))
	assert.Equal(t, "Video not found.", err.Error())

	// Wrapped errors still classify.
	wrapped := fmt.Errorf("handling request: %w", err)
	assert.True(t, IsKind(wrapped, KindNotFound))

	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(BadRequest("bad")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("missing")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Forbidden("nope")))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(Unauthorized("who")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
