package screen

import (
	"context"
	"strconv"
	"strings"

	"github.com/accessflow/accessflow/internal/client/forms"
	"github.com/accessflow/accessflow/internal/client/transport"
	"github.com/accessflow/accessflow/internal/core/domain"
)

// UserScreen is the user management screen: the generic controller bound to
// the user operations plus the user form handling.
type UserScreen struct {
	*Controller[domain.User]
	client *transport.Client
}

func NewUserScreen(client *transport.Client, notify *Center) *UserScreen {
	s := &UserScreen{client: client}
	s.Controller = NewController("usuários", Ops[domain.User]{
		List: client.GetAllUsers,
		Lookup: func(ctx context.Context, criteria Criteria) (domain.User, error) {
			user, err := client.GetUserByParams(ctx, userFilter(criteria))
			if err != nil {
				return domain.User{}, err
			}
			return *user, nil
		},
		Delete: client.DeleteUser,
	}, notify)
	return s
}

// userFilter converts stripped filter criteria to the lookup filter.
func userFilter(criteria Criteria) domain.UserFilter {
	var f domain.UserFilter
	if raw, ok := criteria["id"]; ok {
		if id, ok := asInt64(raw); ok {
			f.ID = &id
		}
	}
	if nome, ok := criteria["nome"].(string); ok {
		f.Name = nome
	}
	if email, ok := criteria["email"].(string); ok {
		f.Email = email
	}
	return f
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

// Columns is the fixed ordered column list of the user table.
func (s *UserScreen) Columns() []Column {
	return []Column{
		{Name: "id", Label: "ID"},
		{Name: "name", Label: "Nome"},
		{Name: "email", Label: "Email"},
		{Name: "createdAt", Label: "Data Criação"},
		{Name: "updatedAt", Label: "Data Atualização"},
		{Name: "status", Label: "Status"},
		{Name: "profiles", Label: "Perfis"},
		{Name: "actions", Label: "Ações"},
	}
}

// Rows renders the currently visible users through the column accessors.
func (s *UserScreen) Rows() []map[string]string {
	accessors := map[string]Accessor[domain.User]{
		"id":        func(u domain.User) string { return strconv.FormatInt(u.ID, 10) },
		"name":      func(u domain.User) string { return u.Name },
		"email":     func(u domain.User) string { return u.Email },
		"createdAt": func(u domain.User) string { return u.CreatedAt.Format("02/01/2006") },
		"updatedAt": func(u domain.User) string { return u.UpdatedAt.Format("02/01/2006") },
		"status": func(u domain.User) string {
			if u.Active {
				return "Ativo"
			}
			return "Inativo"
		},
		"profiles": func(u domain.User) string {
			names := make([]string, 0, len(u.Profiles))
			for _, p := range u.Profiles {
				names = append(names, p.Name)
			}
			return strings.Join(names, ", ")
		},
		"actions": func(domain.User) string { return "editar excluir" },
	}
	return Rows(s.Visible(), s.Columns(), accessors)
}

// Create validates the form and, when clean, issues the create mutation with
// the shared success contract. Field errors block the submission entirely.
func (s *UserScreen) Create(ctx context.Context, form forms.UserForm) (map[string]string, error) {
	if fields := forms.Validate(form); len(fields) > 0 {
		return fields, nil
	}

	return nil, s.SubmitMutation(ctx, "Usuário cadastrado", func(ctx context.Context) error {
		_, err := s.client.CreateUser(ctx, userPayload(form))
		return err
	})
}

// Update validates the form and issues the update mutation scoped to id.
func (s *UserScreen) Update(ctx context.Context, id int64, form forms.UserForm) (map[string]string, error) {
	if fields := forms.Validate(form); len(fields) > 0 {
		return fields, nil
	}

	return nil, s.SubmitMutation(ctx, "Usuário atualizado", func(ctx context.Context) error {
		_, err := s.client.UpdateUser(ctx, id, userPayload(form))
		return err
	})
}

// EditDefaults pre-populates the form from an existing user, with profile
// selections re-expressed as the multi-select's label/value pairs.
func EditDefaults(user domain.User) forms.UserForm {
	perfis := make([]forms.Option, 0, len(user.Profiles))
	for _, p := range user.Profiles {
		perfis = append(perfis, forms.Option{Label: p.Name, Value: strconv.FormatInt(p.ID, 10)})
	}
	return forms.UserForm{
		Nome:   user.Name,
		Email:  user.Email,
		Perfis: perfis,
	}
}

func userPayload(form forms.UserForm) transport.UserPayload {
	ids := make([]int64, 0, len(form.Perfis))
	for _, opt := range form.Perfis {
		if id, err := strconv.ParseInt(opt.Value, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return transport.UserPayload{
		Name:       form.Nome,
		Email:      form.Email,
		Password:   form.Senha,
		Active:     true,
		ProfileIDs: ids,
	}
}
