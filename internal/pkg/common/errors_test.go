package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := NewParseError("household model", "/data/household-model.yaml", cause)

	assert.Equal(t,
		"failed to parse household model (/data/household-model.yaml): yaml: line 3: mapping values are not allowed",
		err.Error())
	assert.ErrorIs(t, err, cause)

	noPath := NewParseError("scoring config", "", cause)
	assert.Equal(t, "failed to parse scoring config: yaml: line 3: mapping values are not allowed", noPath.Error())
}

func TestCustomError(t *testing.T) {
	cause := errors.New("boom")
	err := NewError(ErrCodeInternalError, "something broke", 2, cause)

	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, 2, err.ExitCode)
	assert.ErrorIs(t, err, cause)

	var coded *CustomError
	assert.ErrorAs(t, error(err), &coded)
	assert.Equal(t, ErrCodeInternalError, coded.Code)

	messageOnly := NewError(ErrCodeNotFound, "nope", 1, nil)
	assert.Equal(t, "nope", messageOnly.Error())
}
