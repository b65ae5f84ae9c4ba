package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/dmitrijs2005/fintrack/internal/common"
)

// ValidationError is a form that failed local validation. Nothing was sent
// to the server.
type ValidationError struct {
	// Fields maps a form field to its message.
	Fields map[string]string
	// Message is the message of the first failing field in form order.
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return common.ErrorValidation }

// LoginForm holds the login inputs. Username may be an email address.
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (f LoginForm) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required.Error("Username or Email is required")),
		validation.Field(&f.Password, validation.Required.Error("Password is required")),
	)
	return toValidationError(err, "username", "password")
}

type RegisterForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f RegisterForm) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required.Error("Username is required")),
		validation.Field(&f.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Invalid email address"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("Password is required"),
			validation.RuneLength(6, 0).Error("Password must be at least 6 characters"),
		),
	)
	return toValidationError(err, "username", "email", "password")
}

// IncomeForm is the add-income form. Amount is the raw text typed by the
// user; Source and Date are optional.
type IncomeForm struct {
	Amount string `json:"amount"`
	Source string `json:"source"`
	Date   string `json:"date"`
}

const msgIncomeRequired = "All fields are required."

func (f IncomeForm) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Amount,
			validation.By(nonBlank),
			validation.By(numeric),
		),
	)
	if err != nil {
		return &ValidationError{Fields: map[string]string{"amount": msgIncomeRequired}, Message: msgIncomeRequired}
	}
	return nil
}

// ExpenseForm is the add-expense form.
type ExpenseForm struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

const msgExpenseRequired = "Please provide both category and amount."

func (f ExpenseForm) Validate() error {
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Category, validation.By(nonBlank)),
		validation.Field(&f.Amount, validation.By(nonBlank), validation.By(numeric)),
	)
	if err != nil {
		fields := map[string]string{}
		var ve validation.Errors
		if errors.As(err, &ve) {
			for k := range ve {
				fields[k] = msgExpenseRequired
			}
		}
		return &ValidationError{Fields: fields, Message: msgExpenseRequired}
	}
	return nil
}

func nonBlank(v interface{}) error {
	s, _ := v.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

func numeric(v interface{}) error {
	s, _ := v.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := parseAmount(s); err != nil {
		return err
	}
	return nil
}

func parseAmount(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("must be a number")
	}
	return f, nil
}

// toValidationError converts ozzo errors keyed by json name, picking the
// first message in the given field order.
func toValidationError(err error, order ...string) error {
	if err == nil {
		return nil
	}
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(ve))}
	for k, e := range ve {
		out.Fields[k] = e.Error()
	}
	for _, k := range order {
		if msg, ok := out.Fields[k]; ok {
			out.Message = msg
			break
		}
	}
	return out
}
