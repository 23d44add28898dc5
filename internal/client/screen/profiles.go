package screen

import (
	"context"
	"strconv"

	"github.com/accessflow/accessflow/internal/client/forms"
	"github.com/accessflow/accessflow/internal/client/transport"
	"github.com/accessflow/accessflow/internal/core/domain"
)

// ProfileScreen is the access-profile management screen.
type ProfileScreen struct {
	*Controller[domain.Profile]
	client *transport.Client
}

func NewProfileScreen(client *transport.Client, notify *Center) *ProfileScreen {
	s := &ProfileScreen{client: client}
	s.Controller = NewController("perfis", Ops[domain.Profile]{
		List: client.GetAllProfiles,
		Lookup: func(ctx context.Context, criteria Criteria) (domain.Profile, error) {
			profile, err := client.GetProfileByParams(ctx, profileFilter(criteria))
			if err != nil {
				return domain.Profile{}, err
			}
			return *profile, nil
		},
		Delete: client.DeleteProfile,
	}, notify)
	return s
}

func profileFilter(criteria Criteria) domain.ProfileFilter {
	var f domain.ProfileFilter
	if raw, ok := criteria["id"]; ok {
		if id, ok := asInt64(raw); ok {
			f.ID = &id
		}
	}
	if nome, ok := criteria["nome"].(string); ok {
		f.Name = nome
	}
	return f
}

// Columns is the fixed ordered column list of the profile table.
func (s *ProfileScreen) Columns() []Column {
	return []Column{
		{Name: "id", Label: "ID"},
		{Name: "name", Label: "Nome"},
		{Name: "description", Label: "Descrição"},
		{Name: "actions", Label: "Ações"},
	}
}

// Rows renders the currently visible profiles through the column accessors.
func (s *ProfileScreen) Rows() []map[string]string {
	accessors := map[string]Accessor[domain.Profile]{
		"id":          func(p domain.Profile) string { return strconv.FormatInt(p.ID, 10) },
		"name":        func(p domain.Profile) string { return p.Name },
		"description": func(p domain.Profile) string { return p.Description },
		"actions":     func(domain.Profile) string { return "editar excluir" },
	}
	return Rows(s.Visible(), s.Columns(), accessors)
}

// Create validates the form and issues the create mutation.
func (s *ProfileScreen) Create(ctx context.Context, form forms.ProfileForm) (map[string]string, error) {
	if fields := forms.Validate(form); len(fields) > 0 {
		return fields, nil
	}

	return nil, s.SubmitMutation(ctx, "Perfil cadastrado", func(ctx context.Context) error {
		_, err := s.client.CreateProfile(ctx, profilePayload(form))
		return err
	})
}

// Update validates the form and issues the update mutation scoped to id.
func (s *ProfileScreen) Update(ctx context.Context, id int64, form forms.ProfileForm) (map[string]string, error) {
	if fields := forms.Validate(form); len(fields) > 0 {
		return fields, nil
	}

	return nil, s.SubmitMutation(ctx, "Perfil atualizado", func(ctx context.Context) error {
		_, err := s.client.UpdateProfile(ctx, id, profilePayload(form))
		return err
	})
}

func profilePayload(form forms.ProfileForm) transport.ProfilePayload {
	return transport.ProfilePayload{
		Name:        form.Nome,
		Description: form.Descricao,
	}
}
