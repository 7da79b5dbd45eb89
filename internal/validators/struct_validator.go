// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/dev-connector/models"
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

// messageProvider is implemented by request DTOs that carry their own
// client-facing validation messages.
type messageProvider interface {
	ValidationMessages() map[string]string
}

// StructValidator validates request DTOs through go-playground/validator.
// Field names in reported errors are the json names of the fields.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator constructs a StructValidator and returns it as the
// Validator interface.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// notblank rejects whitespace-only strings that pass "required"
	if err := v.RegisterValidation("notblank", nonstandard.NotBlank); err != nil {
		panic(err)
	}

	// a zero Date must fail "required"
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		date, ok := field.Interface().(models.Date)
		if !ok || date.IsZero() {
			return nil
		}
		return date.Time
	}, models.Date{})

	return &StructValidator{validate: v}
}

// Validate checks obj against its `validate` tags. With fields given only
// those Go struct fields are checked.
//
// Every failed field yields one models.ErrorMessage, in struct field order,
// with Location set to models.LocationBody.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var messages map[string]string
	if provider, ok := obj.(messageProvider); ok {
		messages = provider.ValidationMessages()
	}

	result := make(models.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result = append(result, models.ErrorMessage{
			Msg:      messageFor(messages, fe),
			Param:    fe.Field(),
			Location: models.LocationBody,
		})
	}

	return result
}

func messageFor(messages map[string]string, fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[fe.Field()]; ok {
		return msg
	}
	return fe.Field() + " is invalid"
}
