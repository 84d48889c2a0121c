// Package forms declares the expected input fields for each
// form-submitting operation and validates them.
package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterForm carries the fields of the account registration form.
type RegisterForm struct {
	Name     string `form:"name" validate:"required,min=2,max=100"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// LoginForm carries the fields of the login form.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// PostForm carries the fields of the post authoring form, used for both
// creating and editing posts.
type PostForm struct {
	Title    string `form:"title" validate:"required,max=250"`
	Subtitle string `form:"subtitle" validate:"required,max=250"`
	Body     string `form:"body" validate:"required"`
	ImageURL string `form:"img_url" validate:"required,url"`
}

// CommentForm carries the single field of the comment form.
type CommentForm struct {
	Body string `form:"comment" validate:"required,max=500"`
}

func (f RegisterForm) Validate() error { return check(validate.Struct(f)) }
func (f LoginForm) Validate() error    { return check(validate.Struct(f)) }
func (f PostForm) Validate() error     { return check(validate.Struct(f)) }
func (f CommentForm) Validate() error  { return check(validate.Struct(f)) }

// check turns validator's error list into a single human-readable message
// suitable for rendering next to the form.
func check(err error) error {
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fieldMessage(e))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

func fieldMessage(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
