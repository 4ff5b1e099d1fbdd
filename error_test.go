package jassdoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/jassdoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := jassdoc.Errorf(jassdoc.ENOTFOUND, "no entry named %q", "GetUnitX")

	assert.Equal(t, jassdoc.ENOTFOUND, jassdoc.ErrorCode(err))
	assert.Equal(t, "no entry named \"GetUnitX\"", jassdoc.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load: %w", jassdoc.Errorf(jassdoc.EUNAVAILABLE, "fetch failed"))

	assert.Equal(t, jassdoc.EUNAVAILABLE, jassdoc.ErrorCode(err))
	assert.Equal(t, "fetch failed", jassdoc.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, jassdoc.EINTERNAL, jassdoc.ErrorCode(err))
	assert.Equal(t, "Internal error.", jassdoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jassdoc.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jassdoc.ErrorMessage(nil))
}
