package screen

import "github.com/google/uuid"

// NotificationType distinguishes transient toast styles.
type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
)

// Notification is one transient message surfaced to the user. Errors carry
// the server's message verbatim.
type Notification struct {
	ID          string
	Type        NotificationType
	Title       string
	Description string
}

// Center collects notifications for the hosting surface to display and drain.
type Center struct {
	pending []Notification
}

func NewCenter() *Center {
	return &Center{}
}

func (c *Center) Add(kind NotificationType, title, description string) Notification {
	n := Notification{
		ID:          uuid.NewString(),
		Type:        kind,
		Title:       title,
		Description: description,
	}
	c.pending = append(c.pending, n)
	return n
}

// Drain returns and clears the pending notifications.
func (c *Center) Drain() []Notification {
	out := c.pending
	c.pending = nil
	return out
}
