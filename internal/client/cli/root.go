package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	parts := ""
	if a.userName != "" {
		parts = a.userName + " "
	}
	if a.controller != nil {
		st := a.controller.State()
		if st.TotalPages > 1 {
			parts += fmt.Sprintf("p%d/%d ", st.Page, st.TotalPages)
		}
		if st.ActiveCategory != nil {
			parts += "#" + *st.ActiveCategory + " "
		}
	}
	if parts == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", parts[:len(parts)-1])
}

// restoreSession resolves a stored session quietly at startup.
func (a *App) restoreSession(ctx context.Context) {
	wctx, cancel := a.withTimeout(ctx)
	defer cancel()

	user, err := a.authService.CurrentUser(wctx)
	if err != nil {
		a.logger.Debug(ctx, "no session restored", "error", err)
		return
	}
	a.userName = user.DisplayName()
}

// Root prints the first page and runs the REPL until exit, EOF or ctx
// cancellation.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to memo (type 'help' for commands)")

	a.restoreSession(ctx)
	if a.isLoggedIn() {
		printlnFn(fmt.Sprintf("Welcome back, %s!", a.userName))
	}
	_ = a.List(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}
