package screen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessflow/accessflow/internal/client/credstore"
	"github.com/accessflow/accessflow/internal/client/forms"
	"github.com/accessflow/accessflow/internal/client/guard"
	"github.com/accessflow/accessflow/internal/client/session"
	"github.com/accessflow/accessflow/internal/client/transport"
	"github.com/accessflow/accessflow/internal/core/domain"
)

// newCountingClient returns a transport client whose server records every
// request it receives.
func newCountingClient(t *testing.T) (*transport.Client, *int) {
	t.Helper()

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}"))
	}))
	t.Cleanup(srv.Close)

	store := credstore.NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
	sess := session.NewManager(store)
	history := guard.NewHistory(guard.RouteUsers)
	return transport.NewClient(srv.URL, store, sess, history), &requests
}

func TestUserScreen_CreateInvalidFormSkipsNetwork(t *testing.T) {
	client, requests := newCountingClient(t)
	notify := NewCenter()
	s := NewUserScreen(client, notify)
	s.OpenCreate("Novo usuário")

	// No profile selected: validation blocks the whole submission.
	fields, err := s.Create(context.Background(), forms.UserForm{
		Nome:  "Ana Maria",
		Email: "ana@example.com",
		Senha: "senha123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Selecione ao menos um perfil", fields["perfis"])

	assert.Zero(t, *requests, "invalid form must not reach the network")
	assert.Equal(t, ModalCreate, s.Modal().Kind, "modal keeps its form state")
	assert.Empty(t, notify.Drain())
}

func TestUserScreen_UpdateInvalidFormSkipsNetwork(t *testing.T) {
	client, requests := newCountingClient(t)
	s := NewUserScreen(client, NewCenter())
	s.OpenEdit("Editar usuário", 3)

	fields, err := s.Update(context.Background(), 3, forms.UserForm{
		Nome:  "Ana",
		Email: "not-an-email",
		Perfis: []forms.Option{
			{Label: "comum", Value: "2"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "E-mail inválido", fields["email"])

	assert.Zero(t, *requests, "invalid form must not reach the network")
	assert.Equal(t, ModalEdit, s.Modal().Kind)
}

func TestProfileScreen_CreateInvalidFormSkipsNetwork(t *testing.T) {
	client, requests := newCountingClient(t)
	s := NewProfileScreen(client, NewCenter())
	s.OpenCreate("Novo perfil")

	fields, err := s.Create(context.Background(), forms.ProfileForm{})
	require.NoError(t, err)
	assert.Equal(t, "Nome é obrigatório", fields["nome"])
	assert.Equal(t, "Descrição é obrigatória", fields["descricao"])

	assert.Zero(t, *requests, "invalid form must not reach the network")
	assert.Equal(t, ModalCreate, s.Modal().Kind)
}

func TestUserFilter(t *testing.T) {
	f := userFilter(Criteria{"id": float64(7), "nome": "ana", "email": "ana@example.com"})
	require.NotNil(t, f.ID)
	assert.Equal(t, int64(7), *f.ID)
	assert.Equal(t, "ana", f.Name)
	assert.Equal(t, "ana@example.com", f.Email)

	f = userFilter(Criteria{"nome": "ana"})
	assert.Nil(t, f.ID)
	assert.Empty(t, f.Email)
}

func TestEditDefaults(t *testing.T) {
	form := EditDefaults(domain.User{
		ID:    3,
		Name:  "Ana",
		Email: "ana@example.com",
		Profiles: []domain.Profile{
			{ID: 1, Name: "admin"},
			{ID: 2, Name: "comum"},
		},
	})

	assert.Equal(t, "Ana", form.Nome)
	assert.Empty(t, form.Senha, "password is never pre-populated")
	require.Len(t, form.Perfis, 2)
	assert.Equal(t, forms.Option{Label: "admin", Value: "1"}, form.Perfis[0])
	assert.Equal(t, forms.Option{Label: "comum", Value: "2"}, form.Perfis[1])
}

func TestUserPayload(t *testing.T) {
	payload := userPayload(forms.UserForm{
		Nome:   "Ana",
		Email:  "ana@example.com",
		Senha:  "senha123",
		Perfis: []forms.Option{{Label: "admin", Value: "1"}, {Label: "comum", Value: "2"}},
	})

	assert.Equal(t, "Ana", payload.Name)
	assert.Equal(t, "senha123", payload.Password)
	assert.Equal(t, []int64{1, 2}, payload.ProfileIDs)
}

func TestRows(t *testing.T) {
	created := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	users := []domain.User{
		{
			ID: 1, Name: "Ana", Email: "ana@example.com",
			Active: true, CreatedAt: created, UpdatedAt: created,
			Profiles: []domain.Profile{{Name: "admin"}, {Name: "comum"}},
		},
		{ID: 2, Name: "Bia", Email: "bia@example.com", Active: false},
	}

	columns := []Column{
		{Name: "id", Label: "ID"},
		{Name: "status", Label: "Status"},
		{Name: "profiles", Label: "Perfis"},
		{Name: "missing", Label: "?"},
	}
	accessors := map[string]Accessor[domain.User]{
		"id": func(u domain.User) string { return u.Name },
		"status": func(u domain.User) string {
			if u.Active {
				return "Ativo"
			}
			return "Inativo"
		},
		"profiles": func(u domain.User) string {
			out := ""
			for i, p := range u.Profiles {
				if i > 0 {
					out += ", "
				}
				out += p.Name
			}
			return out
		},
	}

	rows := Rows(users, columns, accessors)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ativo", rows[0]["status"])
	assert.Equal(t, "admin, comum", rows[0]["profiles"])
	assert.Equal(t, "Inativo", rows[1]["status"])
	assert.Equal(t, "", rows[1]["missing"], "columns without an accessor render empty")
}
