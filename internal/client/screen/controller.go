// Package screen implements the interaction model shared by the User and
// Profile management screens: filter form → list query → optional single-item
// lookup → table render → create/edit modal → delete confirmation → mutation
// → refetch.
package screen

import (
	"context"
	"fmt"
	"sync"
)

// ModalKind identifies which modal is live, if any. Exactly one modal exists
// at a time; opening a new one replaces the prior state wholesale.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalCreate
	ModalEdit
	ModalConfirmDelete
)

// ModalAction is one button inside a modal.
type ModalAction struct {
	Label string
	Style string
	Run   func(ctx context.Context) error
}

// Modal is the current modal state.
type Modal struct {
	Kind     ModalKind
	Title    string
	Body     string
	EntityID int64
	Actions  []ModalAction
}

// Ops binds a controller to one entity's remote operations. Lookup receives
// already-stripped criteria and resolves to a single entity.
type Ops[T any] struct {
	List   func(ctx context.Context) ([]T, error)
	Lookup func(ctx context.Context, criteria Criteria) (T, error)
	Delete func(ctx context.Context, id int64) error
}

// Controller drives one CRUD screen instance. It owns its filter and modal
// state exclusively; the only shared state it touches is the session, and
// only indirectly through the request pipeline.
type Controller[T any] struct {
	entity string
	ops    Ops[T]
	notify *Center

	mu        sync.Mutex
	items     []T
	filtered  *T
	lookupSeq uint64
	modal     Modal
	loading   bool
}

func NewController[T any](entity string, ops Ops[T], notify *Center) *Controller[T] {
	return &Controller[T]{entity: entity, ops: ops, notify: notify}
}

// Load fetches the unfiltered list. Errors surface as a notification and the
// previous list is kept.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.setLoading(true)
	items, err := c.ops.List(ctx)
	c.setLoading(false)

	if err != nil {
		c.notify.Add(NotifyError, fmt.Sprintf("Erro ao carregar %s", c.entity), err.Error())
		return err
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// SubmitFilter implements the filter contract: with every field empty the
// screen returns to the unfiltered list; otherwise empty fields are stripped
// and a single-entity lookup runs, displaying exactly that one result.
//
// Each lookup carries a sequence number; a completion that is no longer the
// latest issued lookup is discarded so a slow response cannot overwrite the
// state of a newer filter or an explicit clear.
func (c *Controller[T]) SubmitFilter(ctx context.Context, criteria Criteria) error {
	stripped := StripEmptyFields(criteria)
	if len(stripped) == 0 {
		c.ClearFilter()
		return nil
	}

	c.mu.Lock()
	c.lookupSeq++
	seq := c.lookupSeq
	c.mu.Unlock()

	c.setLoading(true)
	result, err := c.ops.Lookup(ctx, stripped)
	c.setLoading(false)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.lookupSeq {
		return nil // superseded by a newer filter or a clear
	}

	if err != nil {
		c.notify.Add(NotifyError, fmt.Sprintf("Erro ao filtrar %s", c.entity), err.Error())
		return err
	}

	c.filtered = &result
	return nil
}

// ClearFilter returns the screen to the unfiltered list and invalidates any
// in-flight lookup.
func (c *Controller[T]) ClearFilter() {
	c.mu.Lock()
	c.filtered = nil
	c.lookupSeq++
	c.mu.Unlock()
}

// Visible returns the rows currently shown: the filtered single result when
// present, the full list otherwise.
func (c *Controller[T]) Visible() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filtered != nil {
		return []T{*c.filtered}
	}
	return c.items
}

// Filtered reports whether a filter result is being displayed.
func (c *Controller[T]) Filtered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filtered != nil
}

// Loading reports whether a list or lookup request is outstanding. Only the
// table area is gated; the rest of the screen stays interactive.
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Controller[T]) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// Modal returns the current modal state.
func (c *Controller[T]) Modal() Modal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modal
}

// OpenCreate replaces the modal state with an empty create form.
func (c *Controller[T]) OpenCreate(title string) {
	c.setModal(Modal{Kind: ModalCreate, Title: title})
}

// OpenEdit replaces the modal state with an edit form for the given entity.
func (c *Controller[T]) OpenEdit(title string, id int64) {
	c.setModal(Modal{Kind: ModalEdit, Title: title, EntityID: id})
}

// CloseModal discards the current modal.
func (c *Controller[T]) CloseModal() {
	c.setModal(Modal{})
}

func (c *Controller[T]) setModal(m Modal) {
	c.mu.Lock()
	c.modal = m
	c.mu.Unlock()
}

// OpenDeleteConfirm replaces the modal with a confirmation dialog carrying
// exactly two actions: cancel closes the modal and issues nothing; confirm
// runs the delete mutation, closes the modal, and refetches on success.
func (c *Controller[T]) OpenDeleteConfirm(id int64, successTitle string) {
	c.setModal(Modal{
		Kind:     ModalConfirmDelete,
		Title:    "Confirmar exclusão",
		Body:     "Você tem certeza que deseja excluir este item? Essa ação não pode ser desfeita.",
		EntityID: id,
		Actions: []ModalAction{
			{
				Label: "Cancelar",
				Style: "secondary",
				Run: func(context.Context) error {
					c.CloseModal()
					return nil
				},
			},
			{
				Label: "Excluir",
				Style: "primary",
				Run: func(ctx context.Context) error {
					err := c.ops.Delete(ctx, id)
					c.CloseModal()
					if err != nil {
						c.notify.Add(NotifyError, "Erro ao excluir", err.Error())
						return err
					}
					c.notify.Add(NotifySuccess, successTitle, "")
					return c.Load(ctx)
				},
			},
		},
	})
}

// SubmitMutation runs a create or update. On success the modal closes, a
// success notification is added, the filter resets to the unfiltered list,
// and the list is refetched. On failure the server's message surfaces as an
// error notification and the modal (with its form state) stays open.
func (c *Controller[T]) SubmitMutation(ctx context.Context, successTitle string, run func(ctx context.Context) error) error {
	if err := run(ctx); err != nil {
		c.notify.Add(NotifyError, fmt.Sprintf("Erro ao salvar %s", c.entity), err.Error())
		return err
	}

	c.CloseModal()
	c.ClearFilter()
	c.notify.Add(NotifySuccess, successTitle, "")
	return c.Load(ctx)
}
