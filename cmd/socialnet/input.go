package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/socialgraph/profile"
)

// inputValidate checks raw menu input before it reaches the network.
var inputValidate = validator.New()

// errInvalidID is returned for ids that are not positive integers.
var errInvalidID = errors.New("invalid ID")

// profileInput is the raw text entered for a new profile.
type profileInput struct {
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
	Phone string `validate:"omitempty,max=32"`
}

// updateInput is the raw text entered for a profile update; every field may be blank.
type updateInput struct {
	Name  string
	Email string `validate:"omitempty,email"`
	Phone string `validate:"omitempty,max=32"`
}

// Validate reports the first rule each field breaks, in field order.
func (in profileInput) Validate() error { return describe(inputValidate.Struct(in)) }

// Validate reports the first rule each field breaks, in field order.
func (in updateInput) Validate() error { return describe(inputValidate.Struct(in)) }

// Patch converts the blanks-mean-keep update into a profile.Patch.
func (in updateInput) Patch() profile.Patch {
	return profile.PatchFromStrings(in.Name, in.Email, in.Phone)
}

// describe turns validator errors into short user-facing text.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "email":
			msgs = append(msgs, fe.Field()+" is not a valid email address")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s is longer than %s characters", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// parseID parses a positive profile id.
func parseID(s string) (profile.ID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, s)
	}
	return profile.ID(n), nil
}
