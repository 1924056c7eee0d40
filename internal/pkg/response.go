package pkg

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/beneficiarios/beneficiarios/internal/domain"
)

// ErrorResponse is the JSON envelope for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response. If err is a *domain.AppError, its code
// is mapped to the appropriate HTTP status and its message is exposed;
// anything else is an unexpected failure and surfaces as a generic 500. The
// caller is responsible for logging the full detail.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)

	msg := "internal error"
	var appErr *domain.AppError
	if errors.As(err, &appErr) && appErr.Code != domain.CodeInternal {
		msg = appErr.Message
	}

	c.JSON(status, ErrorResponse{Error: msg})
}

// BindAndValidate binds the request body to obj and validates it.
// On failure it sends a 400 ErrorResponse naming the first failing field by
// its JSON tag and returns false. Usage in handlers:
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		bindError(c, err, obj)
		return false
	}
	return true
}

// BindQuery binds query parameters to obj, reporting failures the same way
// as BindAndValidate.
func BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		bindError(c, err, obj)
		return false
	}
	return true
}

// bindError sends a 400 response for a binding failure. Validator errors are
// reduced to a single message for the first failing field; everything else
// (malformed JSON, bad date strings) is reported verbatim.
func bindError(c *gin.Context, err error, obj any) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	jsonTags := buildJSONTagMap(obj)

	fe := ve[0]
	name := fe.Field()
	if tag, ok := jsonTags[fe.StructField()]; ok {
		name = tag
	} else {
		name = strings.ToLower(name)
	}

	msg := name + " is invalid"
	if fe.Tag() == "required" {
		msg = name + " is required"
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// buildJSONTagMap returns a map from struct field name to its JSON tag name.
// If obj is nil or not a struct (pointer), it returns an empty map.
func buildJSONTagMap(obj any) map[string]string {
	if obj == nil {
		return nil
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	m := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if name := parseJSONTagName(tag); name != "" {
			m[f.Name] = name
		}
	}
	return m
}

// parseJSONTagName extracts the field name from a JSON struct tag value.
func parseJSONTagName(tag string) string {
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return ""
	}
	return name
}
