package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/fabienvalero1/userdir/internal/client/api"
	"github.com/fabienvalero1/userdir/internal/client/config"
	"github.com/fabienvalero1/userdir/internal/client/session"
	"github.com/fabienvalero1/userdir/internal/client/storage"
	"github.com/fabienvalero1/userdir/internal/client/tableview"
	"github.com/fabienvalero1/userdir/internal/client/theme"
)

// Columns of the user table, in declared order.
var columns = []tableview.Column{
	{Key: "id", Label: "ID"},
	{Key: "name", Label: "Name"},
	{Key: "email", Label: "Email"},
	{Key: "role", Label: "Role"},
}

// usersView is the guarded table view. Guests can log in but not see it.
var usersView = session.View{
	Name:  "users",
	Roles: []session.Role{session.RoleAdmin, session.RoleUser},
}

type App struct {
	config  *config.Config
	session *session.Manager
	theme   *theme.Manager
	persist *tableview.Persister
	ctrl    *tableview.Controller

	reader *bufio.Reader
	out    io.Writer

	loaded bool
}

func NewApp(ctx context.Context, c *config.Config) *App {
	store, available := storage.Open(ctx, c.StateDSN)
	if !available {
		log.Printf("preference storage unavailable, view state will not persist")
	}

	client := api.NewHTTPClient(c.ServerBaseURL)
	persist := tableview.NewPersister(store)

	ctrl := tableview.NewController(columns, fetchFrom(client), persist, persist.Restore(ctx))

	return &App{
		config:  c,
		session: session.NewManager(session.NewFixedVerifier(session.DefaultCredentials())),
		theme:   theme.NewManager(ctx, store),
		persist: persist,
		ctrl:    ctrl,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// fetchFrom adapts the API client to the controller's fetch signature,
// stringifying records into display rows.
func fetchFrom(client api.Client) tableview.FetchFunc {
	return func(ctx context.Context, limit, offset int) (tableview.PageResult, error) {
		page, err := client.ListUsers(ctx, limit, offset)
		if err != nil {
			return tableview.PageResult{}, err
		}

		rows := make([]tableview.Row, 0, len(page.Users))
		for _, u := range page.Users {
			rows = append(rows, tableview.Row{
				"id":    strconv.FormatInt(u.ID, 10),
				"name":  u.Name,
				"email": u.Email,
				"role":  u.Role,
			})
		}
		return tableview.PageResult{Rows: rows, Total: page.Total}, nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().Authenticated
}

func (a *App) getStatus() string {
	s := string(a.theme.Current())
	if cur := a.session.Current(); cur.Authenticated {
		s = string(cur.Role) + " " + s
	}
	return "(" + s + ")"
}

func (a *App) Run(ctx context.Context) {
	log.Println("Welcome to the userdir client (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
