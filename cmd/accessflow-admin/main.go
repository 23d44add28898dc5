// Command accessflow-admin is a terminal client for the AccessFlow API. It
// exercises the same session gate the web client used: credentials persist
// under the user's home directory, every request carries the bearer token,
// and auth failures reset the session and land on the login route.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/accessflow/accessflow/internal/client/credstore"
	"github.com/accessflow/accessflow/internal/client/forms"
	"github.com/accessflow/accessflow/internal/client/guard"
	"github.com/accessflow/accessflow/internal/client/screen"
	"github.com/accessflow/accessflow/internal/client/session"
	"github.com/accessflow/accessflow/internal/client/transport"
)

const defaultAPIURL = "http://localhost:8080"

type app struct {
	session *session.Manager
	guard   *guard.Guard
	history *guard.History
	client  *transport.Client
	notify  *screen.Center
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	apiURL := os.Getenv("ACCESSFLOW_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot resolve home directory:", err)
		os.Exit(1)
	}

	store := credstore.NewFileStore(filepath.Join(home, ".accessflow", "credentials.json"))
	sess := session.NewManager(store)
	g := guard.New(sess)
	history := guard.NewHistory(g.Resolve(guard.RouteHome).Route)
	client := transport.NewClient(apiURL, store, sess, history)

	a := &app{session: sess, guard: g, history: history, client: client, notify: screen.NewCenter()}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		a.flushNotifications()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	a.flushNotifications()
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.login(ctx, args)
	case "signup":
		return a.signup(ctx, args)
	case "logout":
		return a.client.Logout(ctx)
	case "whoami":
		return a.whoami()
	case "routes":
		return a.routes()
	case "users":
		return a.users(ctx, args)
	case "profiles":
		return a.profiles(ctx, args)
	case "metrics":
		return a.metrics(ctx)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	senha := fs.String("senha", "", "account password")
	_ = fs.Parse(args)

	if fields := forms.Validate(forms.LoginForm{Email: *email, Senha: *senha}); len(fields) > 0 {
		return fieldErrors(fields)
	}

	user, err := a.client.Login(ctx, *email, *senha)
	if err != nil {
		return err
	}

	a.history.Push(guard.RouteHome)
	fmt.Printf("autenticado como %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) signup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	nome := fs.String("nome", "", "full name")
	email := fs.String("email", "", "account email")
	senha := fs.String("senha", "", "account password")
	_ = fs.Parse(args)

	if fields := forms.Validate(forms.SignUpForm{Nome: *nome, Email: *email, Senha: *senha}); len(fields) > 0 {
		return fieldErrors(fields)
	}

	user, err := a.client.SignUp(ctx, *nome, *email, *senha)
	if err != nil {
		return err
	}
	fmt.Printf("conta criada: %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) whoami() error {
	s := a.session.Current()
	if !s.IsAuthenticated() {
		fmt.Println("não autenticado")
		return nil
	}
	fmt.Printf("%s <%s> admin=%v\n", s.User.Name, s.User.Email, s.IsAdmin())
	return nil
}

func (a *app) routes() error {
	for _, r := range a.guard.VisibleRoutes() {
		fmt.Println(r)
	}
	return nil
}

func (a *app) users(ctx context.Context, args []string) error {
	if d := a.guard.Navigate(a.history, guard.RouteUsers); d.Route != guard.RouteUsers {
		return fmt.Errorf("redirecionado para %s", d.Route)
	}

	s := screen.NewUserScreen(a.client, a.notify)
	if err := s.Load(ctx); err != nil {
		return err
	}

	if len(args) > 0 && args[0] == "find" {
		fs := flag.NewFlagSet("users find", flag.ExitOnError)
		id := fs.Int64("id", 0, "user id")
		nome := fs.String("nome", "", "name prefix")
		email := fs.String("email", "", "exact email")
		_ = fs.Parse(args[1:])

		criteria := screen.Criteria{"nome": *nome, "email": *email}
		if *id > 0 {
			criteria["id"] = *id
		}
		if err := s.SubmitFilter(ctx, criteria); err != nil {
			return err
		}
	}

	printTable(s.Columns(), s.Rows())
	return nil
}

func (a *app) profiles(ctx context.Context, args []string) error {
	if d := a.guard.Navigate(a.history, guard.RouteProfiles); d.Route != guard.RouteProfiles {
		return fmt.Errorf("redirecionado para %s", d.Route)
	}

	s := screen.NewProfileScreen(a.client, a.notify)
	if err := s.Load(ctx); err != nil {
		return err
	}

	if len(args) > 0 && args[0] == "find" {
		fs := flag.NewFlagSet("profiles find", flag.ExitOnError)
		id := fs.Int64("id", 0, "profile id")
		nome := fs.String("nome", "", "name prefix")
		_ = fs.Parse(args[1:])

		criteria := screen.Criteria{"nome": *nome}
		if *id > 0 {
			criteria["id"] = *id
		}
		if err := s.SubmitFilter(ctx, criteria); err != nil {
			return err
		}
	}

	printTable(s.Columns(), s.Rows())
	return nil
}

func (a *app) metrics(ctx context.Context) error {
	if d := a.guard.Navigate(a.history, guard.RouteHome); d.Route != guard.RouteHome {
		return fmt.Errorf("redirecionado para %s", d.Route)
	}

	snap, err := a.client.GetMetrics(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Total Users:    %d\n", snap.TotalUsers)
	fmt.Printf("Total Profiles: %d\n", snap.TotalProfiles)
	fmt.Printf("Active:         %d\n", snap.ActiveUsers)
	fmt.Printf("Inactive:       %d\n", snap.InactiveUsers)
	return nil
}

func (a *app) flushNotifications() {
	for _, n := range a.notify.Drain() {
		if n.Description != "" {
			fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", n.Type, n.Title, n.Description)
		} else {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", n.Type, n.Title)
		}
	}
}

func fieldErrors(fields map[string]string) error {
	for field, msg := range fields {
		fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
	}
	return fmt.Errorf("dados inválidos")
}

func printTable(columns []screen.Column, rows []map[string]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col.Label)
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		for i, col := range columns {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, row[col.Name])
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: accessflow-admin <command> [flags]

commands:
  login    -email -senha        authenticate and start a session
  signup   -nome -email -senha  register a new account
  logout                        revoke the token and clear the session
  whoami                        show the current session
  routes                        list navigable routes for this session
  users    [find -id -nome -email]
  profiles [find -id -nome]
  metrics                       dashboard counters`)
}
