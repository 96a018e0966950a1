package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"doc-qa-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and folds failures into a
// single BAD_REQUEST error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Wrap(apperror.KindBadRequest, "invalid request", err)
	}

	var fields []string
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return apperror.New(apperror.KindBadRequest, "invalid request: "+strings.Join(fields, ", "))
}
