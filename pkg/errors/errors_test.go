package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New(CodeModelLoad, "weight blob truncated")
	assert.Equal(t, "[MODEL_001] weight blob truncated", e.Error())

	assert.Equal(t, "[MODEL_001] weight blob truncated: model.json", e.WithDetail("model.json").Error())
}

func TestValidation_AccumulatesDetails(t *testing.T) {
	e := Validation("usia harus antara 0-60 bulan", "tinggi badan harus antara 30-120 cm")
	assert.Equal(t, CodeValidation, e.Code)
	assert.Len(t, e.Details, 2)
	assert.Contains(t, e.Error(), "usia harus antara 0-60 bulan; tinggi badan harus antara 30-120 cm")
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeInference, "forward pass failed"))

	cause := fmt.Errorf("matrix dimension mismatch")
	e := Wrap(cause, CodeInference, "forward pass failed")
	require.NotNil(t, e)
	assert.Equal(t, CodeInference, e.Code)
	assert.ErrorIs(t, e, cause)
}

func TestWrap_PreservesCodeForUnknown(t *testing.T) {
	inner := ModelLoad("missing manifest")
	e := Wrap(inner, CodeUnknown, "load stage")
	assert.Equal(t, CodeModelLoad, e.Code)
}

func TestIsCodeAndGetCode(t *testing.T) {
	e := Wrap(ModelTimeout("deadline exceeded"), CodeInternal, "assess failed")
	assert.True(t, IsCode(e, CodeModelTimeout))
	assert.True(t, IsCode(e, CodeInternal))
	assert.False(t, IsCode(e, CodeValidation))

	assert.Equal(t, CodeInternal, GetCode(e))
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain")))
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(ModelTimeout("slow load")))
	assert.True(t, IsTimeout(fmt.Errorf("predict: %w", context.DeadlineExceeded)))
	assert.False(t, IsTimeout(Inference("bad shape")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(CodeValidation))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusGatewayTimeout, HTTPStatus(CodeModelTimeout))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(CodeModelLoad))
	assert.Equal(t, http.StatusTooManyRequests, HTTPStatus(CodeRateLimit))
}
