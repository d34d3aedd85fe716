package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "yt-digest/internal/app/errors"
)

func TestHTTPStatusByKind(t *testing.T) {
	tests := []struct {
		kind   ErrorKind
		status int
	}{
		{KindValidation, http.StatusUnprocessableEntity},
		{KindBadRequest, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindServiceUnavailable, http.StatusServiceUnavailable},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := &APIError{Kind: tt.kind, Message: "x"}
			assert.Equal(t, tt.status, err.HTTPStatus())
		})
	}
}

func TestFromDomainMapsSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"unknown playlist", apperrors.ErrUnknownPlaylist, KindNotFound},
		{"unknown conversation", apperrors.ErrUnknownConversation, KindNotFound},
		{"no digest", apperrors.ErrNoDigest, KindNotFound},
		{"invalid input", apperrors.ErrInvalidInput, KindValidation},
		{"empty query", apperrors.ErrEmptyQuery, KindValidation},
		{"empty corpus", apperrors.ErrEmptyCorpus, KindValidation},
		{"provider failure", apperrors.ErrProviderFailure, KindServiceUnavailable},
		{"store unavailable", apperrors.ErrStoreUnavailable, KindServiceUnavailable},
		{"anything else", fmt.Errorf("disk on fire"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromDomain(tt.err)
			assert.Equal(t, tt.kind, apiErr.Kind)
		})
	}
}

func TestFromDomainSeesThroughWrapping(t *testing.T) {
	wrapped := apperrors.Wrap(apperrors.Wrapf(apperrors.ErrUnknownPlaylist, "%s", "PL1"), "load corpus")
	apiErr := FromDomain(wrapped)
	assert.Equal(t, KindNotFound, apiErr.Kind)
}

func TestFromDomainMasksUnknownErrors(t *testing.T) {
	apiErr := FromDomain(fmt.Errorf("dsn=postgres://user:hunter2@db/prod"))
	assert.Equal(t, KindInternal, apiErr.Kind)
	assert.Equal(t, "Internal server error", apiErr.Message)
}

func TestFromDomainPassesThroughAPIErrors(t *testing.T) {
	orig := NewServiceUnavailableError("try later")
	apiErr := FromDomain(orig)
	assert.Same(t, orig, apiErr)
}

func TestFromDomainNil(t *testing.T) {
	assert.Nil(t, FromDomain(nil))
}
