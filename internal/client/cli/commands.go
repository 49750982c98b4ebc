package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reomoon/memo/internal/client/client"
	"github.com/reomoon/memo/internal/client/services"
	"github.com/reomoon/memo/internal/client/ui"
)

var errUsage = errors.New("usage")

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid memo id %q", errUsage, arg)
	}
	return id, nil
}

// List prints the current page.
func (a *App) List(ctx context.Context) error {
	rm := a.controller.Render()
	fmt.Fprint(a.out, renderModel(rm))
	return nil
}

func (a *App) NextPage(ctx context.Context) error {
	if !a.controller.NextPage() {
		a.println("Already on the last page.")
		return nil
	}
	return a.List(ctx)
}

func (a *App) PreviousPage(ctx context.Context) error {
	if !a.controller.PreviousPage() {
		a.println("Already on the first page.")
		return nil
	}
	return a.List(ctx)
}

func (a *App) GoToPage(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || !a.controller.GoToPage(n) {
		a.println("No such page:", arg)
		return fmt.Errorf("%w: page %q", errUsage, arg)
	}
	return a.List(ctx)
}

// Filter applies a category filter; no arguments shows every category.
func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.controller.FilterByCategory(nil)
	} else {
		category := strings.Join(args, " ")
		a.controller.FilterByCategory(&category)
	}
	return a.List(ctx)
}

func (a *App) Categories(ctx context.Context) error {
	for _, c := range a.controller.State().Categories {
		a.println(c)
	}
	return nil
}

// Add walks the editor for a new memo.
func (a *App) Add(ctx context.Context) error {
	a.controller.OpenCreate()
	return a.edit(ctx)
}

// Edit walks the editor pre-filled from memo arg. Locked memos open too; the
// lock toggle starts on and saving asks for a code again.
func (a *App) Edit(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if err := a.controller.OpenEdit(id); err != nil {
		a.println(err.Error())
		return err
	}
	return a.edit(ctx)
}

// clearURL is the answer that empties the URL of an edited memo.
const clearURL = "-"

// retryable reports submit failures that keep the editor open for another
// attempt.
func retryable(err error) bool {
	return errors.Is(err, ui.ErrValidation) ||
		errors.Is(err, ui.ErrInvalidCode) ||
		errors.Is(err, ui.ErrEmptyBody)
}

// edit fills the open editor from the terminal and submits it, asking again
// while the form is rejected. Input errors and cancellation close the editor.
func (a *App) edit(ctx context.Context) error {
	defer a.controller.Close()

	for {
		err := a.fillForm(ctx)
		if err == nil {
			err = a.submit(ctx)
			if err == nil {
				return a.List(ctx)
			}
			a.println("Memo not saved.")
		}
		if !retryable(err) {
			return err
		}
	}
}

// fillForm reads the editor fields. Empty answers keep the current value;
// an empty title on a new memo asks the assistant to generate one from the
// body.
func (a *App) fillForm(ctx context.Context) error {
	form := a.controller.Form()
	editing := a.controller.State().Modal.EditingID != nil

	titlePrompt := "Title (empty to generate from body)"
	if editing || form.Title != "" {
		titlePrompt = fmt.Sprintf("Title [%s]", form.Title)
	}
	title, err := getSimpleText(a.reader, titlePrompt, a.out)
	if err != nil {
		return err
	}
	if title != "" {
		form.Title = title
	}

	urlPrompt := fmt.Sprintf("URL [%s]", form.URL)
	if form.URL != "" {
		urlPrompt += " (" + clearURL + " to clear)"
	}
	url, err := getSimpleText(a.reader, urlPrompt, a.out)
	if err != nil {
		return err
	}
	switch url {
	case "":
	case clearURL:
		form.URL = ""
	default:
		form.URL = url
	}

	body, err := getMultiline(a.reader, "Body", a.out)
	if err != nil {
		return err
	}
	if body != "" {
		form.Body = body
	}

	if err := a.controller.SetForm(form); err != nil {
		return err
	}

	if strings.TrimSpace(form.Title) == "" {
		gctx, cancel := a.withTimeout(ctx)
		err := a.controller.GenerateTitle(gctx)
		cancel()
		if err != nil {
			return err
		}
	}

	state := a.controller.State().Modal
	lock, err := GetConfirmation(a.reader, "Protect with a 4-digit code?", a.out)
	if err != nil {
		return err
	}
	if lock != state.PasswordEnabled {
		if _, err := a.controller.TogglePassword(); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) submit(ctx context.Context) error {
	fmt.Fprintln(a.out, renderModal(a.controller.Render().Modal))

	sctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.controller.Submit(sctx)
}

func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if err := a.controller.Delete(ctx, id); err != nil {
		return err
	}
	return a.List(ctx)
}

func (a *App) Unlock(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if err := a.controller.Unlock(id); err != nil {
		if errors.Is(err, ui.ErrNotFound) {
			a.println(err.Error())
		}
		return err
	}
	return a.List(ctx)
}

func (a *App) Copy(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	err = a.controller.Copy(id)
	switch {
	case errors.Is(err, ui.ErrLocked):
		a.println(fmt.Sprintf("Memo is locked; run `unlock %d` first.", id))
	case errors.Is(err, ui.ErrNotFound):
		a.println(err.Error())
	}
	return err
}

func (a *App) Summarize(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	sctx, cancel := a.withTimeout(ctx)
	defer cancel()

	summary, err := a.controller.Summarize(sctx, id)
	if err != nil {
		if errors.Is(err, ui.ErrLocked) || errors.Is(err, ui.ErrNotFound) || errors.Is(err, ui.ErrNoAssistance) {
			a.println(err.Error())
		}
		return err
	}
	a.println(summary)
	return nil
}

// Login prints the provider authorization URL. The user finishes with
// `code <code>` after authorizing.
func (a *App) Login(ctx context.Context) error {
	lctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.authService.LoginURL(lctx, a.config.RedirectURL)
	if err != nil {
		a.println("GitHub login failed:", err.Error())
		return err
	}
	a.println("Open this URL in a browser and authorize the app:")
	a.println(u)
	a.println("Then run: code <code from the callback URL>")
	return nil
}

func (a *App) Code(ctx context.Context, code string) error {
	cctx, cancel := a.withTimeout(ctx)
	defer cancel()

	user, err := a.authService.CompleteLogin(cctx, code)
	if err != nil {
		a.println("Login failed:", err.Error())
		return err
	}
	a.userName = user.DisplayName()
	a.println(fmt.Sprintf("Welcome, %s!", a.userName))
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	wctx, cancel := a.withTimeout(ctx)
	defer cancel()

	user, err := a.authService.CurrentUser(wctx)
	switch {
	case errors.Is(err, services.ErrNotLoggedIn):
		a.userName = ""
		a.println("Not logged in.")
		return err
	case errors.Is(err, client.ErrUnavailable):
		a.println("Server unavailable.")
		return err
	case err != nil:
		a.println(err.Error())
		return err
	}
	a.userName = user.DisplayName()
	a.println(fmt.Sprintf("%s (@%s)", user.DisplayName(), user.Login))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	ok, err := GetConfirmation(a.reader, "Log out?", a.out)
	if err != nil || !ok {
		return err
	}
	lctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.authService.Logout(lctx); err != nil {
		return err
	}
	a.userName = ""
	a.println("Logged out.")
	return nil
}
