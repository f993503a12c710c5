package requests

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestValidateReading(t *testing.T) {
	req, err := ValidateReading(newContext(`{"question":"Что меня ждет?","spread_type":"three","user_id":42}`))
	require.NoError(t, err)

	assert.Equal(t, "three", req.SpreadType)
	assert.Equal(t, DefaultLanguage, req.Language)
	require.NotNil(t, req.UserID)
	assert.Equal(t, int64(42), *req.UserID)
}

func TestValidateReadingRejectsUnknownSpread(t *testing.T) {
	_, err := ValidateReading(newContext(`{"question":"q","spread_type":"tarot"}`))

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Errors, "spread_type")
}

func TestValidateReadingRequiresSpread(t *testing.T) {
	_, err := ValidateReading(newContext(`{"question":"q"}`))

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"spread_type is required"}, verr.Errors["spread_type"])
}

func TestValidateReadingCountsCharactersNotBytes(t *testing.T) {
	question := strings.Repeat("я", 1100)
	req, err := ValidateReading(newContext(`{"question":"` + question + `","spread_type":"single"}`))
	require.NoError(t, err)
	assert.Equal(t, question, req.Question)

	_, err = ValidateReading(newContext(`{"question":"` + strings.Repeat("я", 2001) + `","spread_type":"single"}`))
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"question must not exceed 2000 characters"}, verr.Errors["question"])
}

func TestValidateInterpretationCountsCharactersNotBytes(t *testing.T) {
	question := strings.Repeat("ж", 1500)
	req, err := ValidateInterpretation(newContext(`{"question":"` + question + `","spread_type":"single","cards":[]}`))
	require.NoError(t, err)
	assert.Equal(t, question, req.Question)
}

func TestValidateReadingBadJSON(t *testing.T) {
	_, err := ValidateReading(newContext(`{"question":`))

	assert.ErrorIs(t, err, ErrBind)
}

func TestValidateInterpretation(t *testing.T) {
	req, err := ValidateInterpretation(newContext(`{"question":"q","spread_type":"single","cards":[{"id":0,"name":"The Fool","name_ru":"Шут","meaning":"m","keywords":[],"position":"Ситуация"}]}`))
	require.NoError(t, err)

	require.Len(t, req.Cards, 1)
	assert.Equal(t, "Ситуация", req.Cards[0].PositionLabel())
	assert.False(t, req.Cards[0].Reversed)
}
