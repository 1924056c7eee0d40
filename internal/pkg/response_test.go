package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/beneficiarios/beneficiarios/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newResponseTestContext creates a gin context backed by an httptest.ResponseRecorder.
func newResponseTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

// newResponseTestContextWithBody creates a gin context with a JSON request body.
func newResponseTestContextWithBody(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

func TestError_AppError_NotFound(t *testing.T) {
	c, w := newResponseTestContext()

	Error(c, domain.NewAppError(domain.CodeNotFound, "beneficiary not found", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if resp := decodeErrorResponse(t, w); resp.Error != "beneficiary not found" {
		t.Errorf("expected message %q, got %q", "beneficiary not found", resp.Error)
	}
}

func TestError_AppError_Validation(t *testing.T) {
	c, w := newResponseTestContext()

	Error(c, domain.NewValidationError("gender must be 'M' or 'F'"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if resp := decodeErrorResponse(t, w); resp.Error != "gender must be 'M' or 'F'" {
		t.Errorf("expected domain message, got %q", resp.Error)
	}
}

func TestError_AppError_InternalHidesDetail(t *testing.T) {
	c, w := newResponseTestContext()

	Error(c, domain.NewAppError(domain.CodeInternal, "database error", errors.New("dial tcp: connection refused")))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if resp := decodeErrorResponse(t, w); resp.Error != "internal error" {
		t.Errorf("expected generic message, got %q", resp.Error)
	}
}

func TestError_GenericError(t *testing.T) {
	c, w := newResponseTestContext()

	Error(c, errors.New("something broke"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if resp := decodeErrorResponse(t, w); resp.Error != "internal error" {
		t.Errorf("expected generic message, got %q", resp.Error)
	}
}

func TestBindAndValidate_InvalidJSON(t *testing.T) {
	c, w := newResponseTestContextWithBody(`{"invalid json`)

	type bindInput struct {
		FirstNames string `json:"firstNames" binding:"required"`
	}

	var input bindInput
	if BindAndValidate(c, &input) {
		t.Error("expected BindAndValidate to return false for invalid JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestBindAndValidate_MissingField(t *testing.T) {
	c, w := newResponseTestContextWithBody(`{"lastNames":"Torres"}`)

	type bindInput struct {
		FirstNames string `json:"firstNames" binding:"required"`
		LastNames  string `json:"lastNames" binding:"required"`
	}

	var input bindInput
	if BindAndValidate(c, &input) {
		t.Error("expected BindAndValidate to return false for missing required field")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if resp := decodeErrorResponse(t, w); resp.Error != "firstNames is required" {
		t.Errorf("expected message %q, got %q", "firstNames is required", resp.Error)
	}
}

func TestBindAndValidate_NonRequiredRule(t *testing.T) {
	c, w := newResponseTestContextWithBody(`{"identityDocumentId":-1}`)

	type bindInput struct {
		IdentityDocumentID int `json:"identityDocumentId" binding:"required,gt=0"`
	}

	var input bindInput
	if BindAndValidate(c, &input) {
		t.Error("expected BindAndValidate to return false")
	}
	if resp := decodeErrorResponse(t, w); resp.Error != "identityDocumentId is invalid" {
		t.Errorf("expected message %q, got %q", "identityDocumentId is invalid", resp.Error)
	}
}

func TestBindAndValidate_ValidInput(t *testing.T) {
	c, w := newResponseTestContextWithBody(`{"firstNames":"Maria"}`)

	type bindInput struct {
		FirstNames string `json:"firstNames" binding:"required"`
	}

	var input bindInput
	if !BindAndValidate(c, &input) {
		t.Error("expected BindAndValidate to return true for valid input")
	}
	// No response should be written on success.
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body on success, got %q", w.Body.String())
	}
	if input.FirstNames != "Maria" {
		t.Errorf("expected FirstNames='Maria', got %q", input.FirstNames)
	}
}

func TestBindQuery(t *testing.T) {
	type queryInput struct {
		Name string `form:"Name"`
		Page int    `form:"Page"`
	}

	t.Run("valid", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/?Name=maria&Page=2", nil)

		var input queryInput
		if !BindQuery(c, &input) {
			t.Fatal("expected BindQuery to return true")
		}
		if input.Name != "maria" || input.Page != 2 {
			t.Errorf("input = %+v", input)
		}
	})

	t.Run("non-numeric page", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/?Page=abc", nil)

		var input queryInput
		if BindQuery(c, &input) {
			t.Error("expected BindQuery to return false for non-numeric page")
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})
}
