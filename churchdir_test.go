package churchdir_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nkgc/churchdir"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := churchdir.Errorf(churchdir.ENOTFOUND, "import %q not found", "test")

	assert.Equal(t, churchdir.ENOTFOUND, churchdir.ErrorCode(err))
	assert.Equal(t, "import \"test\" not found", churchdir.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, churchdir.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, churchdir.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("merging: %w", churchdir.Errorf(churchdir.EINVALID, "bad workbook"))

	assert.Equal(t, churchdir.EINVALID, churchdir.ErrorCode(err))
	assert.Equal(t, "bad workbook", churchdir.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, churchdir.EINTERNAL, churchdir.ErrorCode(err))
	assert.Equal(t, "Internal error.", churchdir.ErrorMessage(err))
}
