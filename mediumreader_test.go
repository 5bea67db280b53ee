package mediumreader_test

import (
	"errors"
	"testing"

	mediumreader "github.com/abdukarimovhm/medium-reader"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := mediumreader.Errorf(mediumreader.ENOTFOUND, "no structured data in %q", "page")

	assert.Equal(t, mediumreader.ENOTFOUND, mediumreader.ErrorCode(err))
	assert.Equal(t, "no structured data in \"page\"", mediumreader.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mediumreader.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, mediumreader.EINTERNAL, mediumreader.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mediumreader.ErrorMessage(nil))
}
