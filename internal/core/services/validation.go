package services

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/apperrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the struct's validate tags and converts failures into an
// apperrors.ValidationError listing the offending fields in snake_case.
func validateStruct(v any, extra ...string) error {
	fields := append([]string(nil), extra...)
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return apperrors.NewAppError(400, "validation failed", errors.Join(apperrors.ErrValidation, err))
		}
		for _, fe := range verrs {
			fields = appendUnique(fields, snakeCase(fe.StructField()))
		}
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields...)
	}
	return nil
}

func appendUnique(fields []string, f string) []string {
	for _, existing := range fields {
		if existing == f {
			return fields
		}
	}
	return append(fields, f)
}

// snakeCase turns Go field names such as BusinessProfileID into business_profile_id.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])
			if i > 0 && (prevLower || (prevUpper && nextLower)) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
