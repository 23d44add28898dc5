// Package forms validates the admin screens' form input before submission.
// Validation is pure and synchronous: each entity has a schema struct and a
// Validate function returning a field → message map; a non-empty map blocks
// the submission so invalid input never reaches the network.
package forms

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Option is a label/value pair as presented by a multi-select control.
type Option struct {
	Label string
	Value string
}

// LoginForm is the login screen schema.
type LoginForm struct {
	Email string `validate:"required,email"`
	Senha string `validate:"required"`
}

// SignUpForm is the registration screen schema.
type SignUpForm struct {
	Nome  string `validate:"required,min=3"`
	Email string `validate:"required,email"`
	Senha string `validate:"required,min=6"`
}

// UserForm is the user create/edit modal schema. Senha is optional on edit;
// profile selections arrive as the multi-select's label/value pairs.
type UserForm struct {
	Nome   string   `validate:"required,min=3"`
	Email  string   `validate:"required,email"`
	Senha  string   `validate:"omitempty,min=6"`
	Perfis []Option `validate:"required,min=1"`
}

// ProfileForm is the profile create/edit modal schema.
type ProfileForm struct {
	Nome      string `validate:"required"`
	Descricao string `validate:"required"`
}

// messages maps field/tag pairs to the user-facing error text.
var messages = map[string]string{
	"Email/required":     "E-mail é obrigatório",
	"Email/email":        "E-mail inválido",
	"Senha/required":     "Senha é obrigatória",
	"Senha/min":          "Senha deve ter no mínimo 6 caracteres",
	"Nome/required":      "Nome é obrigatório",
	"Nome/min":           "Nome é obrigatório",
	"Perfis/required":    "Selecione ao menos um perfil",
	"Perfis/min":         "Selecione ao menos um perfil",
	"Descricao/required": "Descrição é obrigatória",
}

// Validate checks a form schema and returns a map of field name (lowercase)
// to the first error message per field. An empty map means the form may be
// submitted.
func Validate(form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return map[string]string{}
	}

	fields := map[string]string{}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		fields["form"] = err.Error()
		return fields
	}

	for _, fe := range ve {
		name := strings.ToLower(fe.Field())
		if _, seen := fields[name]; seen {
			continue
		}
		if msg, ok := messages[fe.Field()+"/"+fe.Tag()]; ok {
			fields[name] = msg
		} else {
			fields[name] = "Campo inválido"
		}
	}

	return fields
}
