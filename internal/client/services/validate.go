package services

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/greenpath/internal/common"
	"github.com/go-playground/validator/v10"
)

// Pacer runs fn after the UX delay. pacing.Pacer implements it.
type Pacer interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// validateForm checks form against its validate tags. messages maps
// "field.tag" to the text shown to the user; unmapped failures get a
// generic message.
func validateForm(form any, messages map[string]string) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := &common.ValidationError{}
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		ve.Add(fe.Field(), msg)
	}
	return ve.OrNil()
}
