// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const tagUsername = "username"

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// RequestValidator validates the request models using their `validate`
// struct tags. Besides the built-in rules it knows the "username" tag, which
// accepts letters, digits and underscores only.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report JSON field names instead of Go ones
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// cannot fail: the tag is new and the func is non-nil
	_ = v.RegisterValidation(tagUsername, func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate checks a struct (or pointer to one). When fields are given only
// those JSON-named fields are checked. The returned error is a *FieldError
// for the first failing field.
func (v *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	t := reflect.TypeOf(value)
	if t == nil {
		return ErrUnsupportedType
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, value, structFieldNames(t, fields)...)
	} else {
		err = v.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return &FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()}
	}

	return err
}

// structFieldNames translates JSON names into the Go field names that
// StructPartial expects. Unknown names are passed through unchanged.
func structFieldNames(t reflect.Type, jsonNames []string) []string {
	names := make([]string, 0, len(jsonNames))
	for _, jsonName := range jsonNames {
		name := jsonName
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			tagName, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if tagName == jsonName {
				name = f.Name
				break
			}
		}
		names = append(names, name)
	}
	return names
}
