package validator_test

import (
	"context"
	"testing"

	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
)

func validInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "customer",
	}
}

func TestValidateRegister_OK(t *testing.T) {
	v := validator.NewAuthValidator()

	assert.NoError(t, v.ValidateRegister(context.Background(), validInput()))

	in := validInput()
	in.Role = "seller"
	assert.NoError(t, v.ValidateRegister(context.Background(), in))

	//role未指定も通す（usecase側でcustomerに倒す）
	in = validInput()
	in.Role = ""
	assert.NoError(t, v.ValidateRegister(context.Background(), in))
}

func TestValidateRegister_Errors(t *testing.T) {
	v := validator.NewAuthValidator()

	tests := []struct {
		name   string
		mutate func(*usecase.RegisterInput)
		want   string
	}{
		{"missing username", func(in *usecase.RegisterInput) { in.Username = "" }, "required"},
		{"missing email", func(in *usecase.RegisterInput) { in.Email = "  " }, "required"},
		{"missing password", func(in *usecase.RegisterInput) { in.Password = "" }, "required"},
		{"username too short", func(in *usecase.RegisterInput) { in.Username = "ab" }, "3-50"},
		{"bad email", func(in *usecase.RegisterInput) { in.Email = "not-an-email" }, "email"},
		{"bad email no tld", func(in *usecase.RegisterInput) { in.Email = "a@b" }, "email"},
		{"short password", func(in *usecase.RegisterInput) { in.Password = "12345" }, "6 characters"},
		{"admin not self-assignable", func(in *usecase.RegisterInput) { in.Role = "admin" }, "invalid role"},
		{"unknown role", func(in *usecase.RegisterInput) { in.Role = "root" }, "invalid role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := v.ValidateRegister(context.Background(), in)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			ue, ok := usecase.AsError(err)
			assert.True(t, ok)
			if ok {
				assert.Equal(t, usecase.KindValidation, ue.Kind)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	v := validator.NewAuthValidator()

	assert.NoError(t, v.ValidateLogin(context.Background(), "alice@example.com", "x"))
	assert.Error(t, v.ValidateLogin(context.Background(), "", "x"))
	assert.Error(t, v.ValidateLogin(context.Background(), "alice@example.com", ""))
	assert.Error(t, v.ValidateLogin(context.Background(), "bad email", "x"))
}
