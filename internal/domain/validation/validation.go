package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/janhq/chat-server/internal/utils/platformerrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a command struct against its `validate` tags and turns
// failures into a VALIDATION PlatformError listing the offending fields.
func Struct(ctx context.Context, command any) error {
	err := validate.StructCtx(ctx, command)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal, "failed to validate command", err, "0b7e5d3a-92c4-4f1e-8d6a-3c5b9e2f7a10")
	}

	problems := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		problems = append(problems, describe(fe))
	}
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, strings.Join(problems, "; "), nil, "1c8f6e4b-a3d5-4a2f-9e7b-4d6c0f3a8b21")
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must contain at least %s element(s) or character(s)", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}
