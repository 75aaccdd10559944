package handlers_test

import (
	"testing"

	"github.com/SscSPs/sheetbill/internal/handlers"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gstinForm struct {
	GSTIN string `binding:"gstin"`
}

func TestRegisterValidators_GSTINTag(t *testing.T) {
	require.NoError(t, handlers.RegisterValidators())
	require.NoError(t, handlers.RegisterValidators(), "a second call returns the first result")

	assert.NoError(t, binding.Validator.ValidateStruct(gstinForm{GSTIN: "29AABCU9603R1ZX"}))
	assert.Error(t, binding.Validator.ValidateStruct(gstinForm{GSTIN: "29AABCU9603R1YX"}))
}
