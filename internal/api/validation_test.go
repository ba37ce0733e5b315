package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name  string `json:"name" binding:"required" validate:"required"`
	Email string `json:"email" binding:"required,email" validate:"required,email"`
	Time  string `json:"time" validate:"omitempty,datetime=15:04"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(signup{Name: "Alice", Email: "alice@example.com", Time: "18:00"}))

	errs := ValidateStruct(signup{Email: "nope", Time: "6pm"})
	require.Len(t, errs, 3)
	assert.Equal(t, "Name is required", errs[0].Message)
	assert.Equal(t, "Email must be a valid email address", errs[1].Message)
	assert.Equal(t, "datetime", errs[2].Tag)
}

func bind(t *testing.T, body string) (*httptest.ResponseRecorder, bool) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var dst signup
	return w, BindJSON(c, &dst)
}

func TestBindJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		w, ok := bind(t, `{"name":"Alice","email":"alice@example.com"}`)
		assert.True(t, ok)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("binding failures are listed per field", func(t *testing.T) {
		w, ok := bind(t, `{"email":"alice"}`)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation failed", resp.Error)
		assert.Len(t, resp.Details, 2)
	})

	t.Run("malformed json", func(t *testing.T) {
		w, ok := bind(t, `{"name":`)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"error"`)
	})
}
