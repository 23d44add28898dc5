// Package guard decides, per navigation, whether a screen is reachable for
// the current session, and models the navigation history the decisions act on.
package guard

import "github.com/accessflow/accessflow/internal/client/session"

// Client-side routes. The protected set requires an authenticated session;
// users and profiles are additionally hidden from navigation for non-admins.
const (
	RouteHome     = "/"
	RouteUsers    = "/usuarios"
	RouteProfiles = "/perfis"
	RouteSettings = "/configuracoes"
	RouteLogin    = "/login"
	RouteRegister = "/cadastro"
)

var openRoutes = map[string]bool{
	RouteLogin:    true,
	RouteRegister: true,
}

var adminRoutes = map[string]bool{
	RouteUsers:    true,
	RouteProfiles: true,
}

// navRoutes is the ordered navigation menu for authenticated sessions.
var navRoutes = []string{RouteHome, RouteUsers, RouteProfiles, RouteSettings}

// Navigator performs client-side navigation. Replace substitutes the current
// history entry so the abandoned screen cannot be reached with back-navigation.
type Navigator interface {
	Push(route string)
	Replace(route string)
}

// Decision is the outcome of resolving a navigation attempt.
type Decision struct {
	Route string
	// Replace is set when the redirect must overwrite the current history
	// entry instead of stacking on top of it.
	Replace bool
}

// Guard gates navigation on the session state.
type Guard struct {
	session *session.Manager
}

func New(session *session.Manager) *Guard {
	return &Guard{session: session}
}

// Resolve returns where a navigation to target actually lands. Protected
// routes bounce unauthenticated sessions to the login screen, replacing
// history.
func (g *Guard) Resolve(target string) Decision {
	if openRoutes[target] || g.session.IsAuthenticated() {
		return Decision{Route: target}
	}
	return Decision{Route: RouteLogin, Replace: true}
}

// Navigate resolves target and applies the outcome to nav.
func (g *Guard) Navigate(nav Navigator, target string) Decision {
	d := g.Resolve(target)
	if d.Replace {
		nav.Replace(d.Route)
	} else {
		nav.Push(d.Route)
	}
	return d
}

// VisibleRoutes lists the navigation entries the current session may see.
// Admin-only screens are hidden from non-admin sessions; the server enforces
// the restriction regardless.
func (g *Guard) VisibleRoutes() []string {
	if !g.session.IsAuthenticated() {
		return []string{RouteLogin, RouteRegister}
	}

	routes := make([]string, 0, len(navRoutes))
	for _, r := range navRoutes {
		if adminRoutes[r] && !g.session.IsAdmin() {
			continue
		}
		routes = append(routes, r)
	}
	return routes
}

// History is a Navigator recording the navigation stack.
type History struct {
	stack []string
}

// NewHistory starts the history at the given route.
func NewHistory(initial string) *History {
	return &History{stack: []string{initial}}
}

func (h *History) Push(route string) {
	h.stack = append(h.stack, route)
}

// Replace swaps the top history entry for route.
func (h *History) Replace(route string) {
	if len(h.stack) == 0 {
		h.stack = []string{route}
		return
	}
	h.stack[len(h.stack)-1] = route
}

// Current returns the route on top of the stack.
func (h *History) Current() string {
	if len(h.stack) == 0 {
		return ""
	}
	return h.stack[len(h.stack)-1]
}

// Back pops the current entry and returns the new top.
func (h *History) Back() string {
	if len(h.stack) > 1 {
		h.stack = h.stack[:len(h.stack)-1]
	}
	return h.Current()
}
