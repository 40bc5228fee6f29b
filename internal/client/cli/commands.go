package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/fabienvalero1/userdir/internal/client/session"
	"github.com/fabienvalero1/userdir/internal/client/tableview"
)

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.session.Login(username, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	// the view-state snapshot is session-scoped; drop it with the session
	a.persist.Clear(ctx)
	a.loaded = false
	log.Printf("Logged out")
	return nil
}

// guardTable runs the access decision for the table view and reports whether
// rendering may proceed.
func (a *App) guardTable() bool {
	switch a.session.Authorize(usersView) {
	case session.RedirectLogin:
		printlnFn("Please login first (command: login)")
		return false
	case session.RedirectForbidden:
		printlnFn("Access denied: your role may not view the user table")
		return false
	}
	return true
}

func (a *App) Users(ctx context.Context) error {
	if !a.guardTable() {
		return nil
	}
	// a standing failure notice means the last fetch never landed; retry it
	if !a.loaded || a.ctrl.Notice() != "" {
		a.ctrl.Refresh(ctx)
		a.loaded = true
	}
	a.renderTable()
	return nil
}

func (a *App) Sort(ctx context.Context, args []string) error {
	if !a.guardTable() {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: sort <column> [asc|desc]")
		return nil
	}

	dir := tableview.SortAsc
	if len(args) > 1 && args[1] == string(tableview.SortDesc) {
		dir = tableview.SortDesc
	}

	a.ctrl.Dispatch(ctx, tableview.SetSort{Key: args[0], Direction: dir})
	a.renderTable()
	return nil
}

func (a *App) ClearSort(ctx context.Context) error {
	if !a.guardTable() {
		return nil
	}

	a.ctrl.Dispatch(ctx, tableview.ClearSort{})
	a.renderTable()
	return nil
}

func (a *App) Filter(ctx context.Context, args []string) error {
	if !a.guardTable() {
		return nil
	}

	text := ""
	if len(args) > 0 {
		text = args[0]
	}

	a.ctrl.Dispatch(ctx, tableview.SetFilter{Text: text})
	a.renderTable()
	return nil
}

func (a *App) ClearFilter(ctx context.Context) error {
	if !a.guardTable() {
		return nil
	}

	a.ctrl.Dispatch(ctx, tableview.SetFilter{})
	a.renderTable()
	return nil
}

func (a *App) Page(ctx context.Context, args []string) error {
	if !a.guardTable() {
		return nil
	}
	n, ok := parseIntArg(args, "Usage: page <n>")
	if !ok {
		return nil
	}

	a.ctrl.Dispatch(ctx, tableview.SetPage{N: n})
	a.renderTable()
	return nil
}

func (a *App) PageSize(ctx context.Context, args []string) error {
	if !a.guardTable() {
		return nil
	}
	n, ok := parseIntArg(args, "Usage: size <n>")
	if !ok {
		return nil
	}

	a.ctrl.Dispatch(ctx, tableview.SetPageSize{N: n})
	a.renderTable()
	return nil
}

func (a *App) Move(ctx context.Context, args []string) error {
	if !a.guardTable() {
		return nil
	}
	if len(args) < 2 || (args[1] != string(tableview.MoveLeft) && args[1] != string(tableview.MoveRight)) {
		printlnFn("Usage: move <column> left|right")
		return nil
	}

	a.ctrl.MoveColumn(ctx, args[0], tableview.MoveDirection(args[1]))
	a.renderTable()
	return nil
}

func (a *App) ResetView(ctx context.Context) error {
	if !a.guardTable() {
		return nil
	}

	a.ctrl.Dispatch(ctx, tableview.Reset{})
	a.renderTable()
	return nil
}

func (a *App) ToggleTheme(ctx context.Context) error {
	next := a.theme.Toggle(ctx)
	printlnFn(fmt.Sprintf("Theme set to %s", next))
	return nil
}

// renderTable waits out any in-flight fetch, then prints the derived view.
func (a *App) renderTable() {
	for a.ctrl.Loading() {
		printlnFn("Loading...")
		<-a.ctrl.Done()
	}

	if notice := a.ctrl.Notice(); notice != "" {
		printlnFn(notice)
	}

	renderView(a.out, a.ctrl.View(), a.ctrl.State())
}

func parseIntArg(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		printlnFn(usage)
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn(usage)
		return 0, false
	}
	return n, true
}
