package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reomoon/memo/internal/client/memostore"
	"github.com/reomoon/memo/internal/client/models"
	"github.com/reomoon/memo/internal/logging"
)

// MemoStore is the part of memostore.Store the controller drives.
type MemoStore interface {
	Create(ctx context.Context, in memostore.Input) (models.Memo, error)
	Update(ctx context.Context, id int64, in memostore.Input) error
	Delete(ctx context.Context, id int64) error
	Get(id int64) (models.Memo, bool)
	Page(n int) []models.Memo
	TotalPages() int
	Categories() []string
	SetCategoryFilter(category *string)
	CategoryFilter() *string
	Classify(ctx context.Context, title, body string) string
	VerifyPassword(stored, candidate string) bool
}

// Prompter asks the user for a line of text. ok is false when the user
// cancelled.
type Prompter interface {
	Prompt(message string) (value string, ok bool)
}

type Confirmer interface {
	Confirm(message string) bool
}

// Clipboard copies text, falling back to whatever secondary mechanism the
// platform offers.
type Clipboard interface {
	Copy(text string) error
}

// Notifier shows transient success toasts and blocking alerts.
type Notifier interface {
	Toast(message string)
	Alert(message string)
}

// TextAssistant generates titles and summaries from memo bodies.
type TextAssistant interface {
	GenerateTitle(ctx context.Context, body string) (string, error)
	Summarize(ctx context.Context, body string) (string, error)
}

// Deps bundles the controller collaborators. Assistant may be nil.
type Deps struct {
	Store     MemoStore
	Assistant TextAssistant
	Prompter  Prompter
	Confirmer Confirmer
	Clipboard Clipboard
	Notifier  Notifier
	Logger    logging.Logger
}

// Controller is not safe for concurrent use.
type Controller struct {
	store     MemoStore
	assistant TextAssistant
	prompter  Prompter
	confirmer Confirmer
	clipboard Clipboard
	notifier  Notifier
	logger    logging.Logger

	page     int
	modal    ModalState
	unlocked map[int64]bool
}

func NewController(d Deps) *Controller {
	l := d.Logger
	if l == nil {
		l = logging.NewNop()
	}
	return &Controller{
		store:     d.Store,
		assistant: d.Assistant,
		prompter:  d.Prompter,
		confirmer: d.Confirmer,
		clipboard: d.Clipboard,
		notifier:  d.Notifier,
		logger:    l,
		page:      1,
		unlocked:  make(map[int64]bool),
	}
}

func (c *Controller) resetUnlocked() {
	c.unlocked = make(map[int64]bool)
}

// OpenCreate opens a blank editor with the lock toggle off.
func (c *Controller) OpenCreate() {
	c.modal = ModalState{Open: true}
}

// OpenEdit opens the editor pre-filled from memo id. The lock toggle is on
// when the memo already has a code.
func (c *Controller) OpenEdit(id int64) error {
	m, ok := c.store.Get(id)
	if !ok {
		return ErrNotFound
	}
	editing := id
	c.modal = ModalState{
		Open:            true,
		EditingID:       &editing,
		Form:            Form{Title: m.Title, URL: m.URL, Body: m.Body},
		PasswordEnabled: m.Locked(),
	}
	return nil
}

// Close discards the editor and its form.
func (c *Controller) Close() {
	c.modal = ModalState{}
}

func (c *Controller) ModalOpen() bool {
	return c.modal.Open
}

// Form returns the current editor content.
func (c *Controller) Form() Form {
	return c.modal.Form
}

func (c *Controller) SetForm(f Form) error {
	if !c.modal.Open {
		return ErrModalClosed
	}
	c.modal.Form = f
	return nil
}

// TogglePassword flips the editor lock toggle and returns the new value.
func (c *Controller) TogglePassword() (bool, error) {
	if !c.modal.Open {
		return false, ErrModalClosed
	}
	c.modal.PasswordEnabled = !c.modal.PasswordEnabled
	return c.modal.PasswordEnabled, nil
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Submit validates the editor, optionally asks for a code, classifies the
// memo and creates or updates it. Any failure leaves the editor open and the
// store untouched.
func (c *Controller) Submit(ctx context.Context) error {
	if !c.modal.Open {
		return ErrModalClosed
	}

	title := strings.TrimSpace(c.modal.Form.Title)
	url := strings.TrimSpace(c.modal.Form.URL)
	body := strings.TrimSpace(c.modal.Form.Body)
	if title == "" || body == "" {
		c.notifier.Alert(MsgTitleBodyNeeded)
		return ErrValidation
	}

	var password *string
	if c.modal.PasswordEnabled {
		code, ok := c.prompter.Prompt(PromptNewCode)
		if !ok {
			return ErrCancelled
		}
		if !isFourDigits(code) {
			c.notifier.Alert(MsgCodeDigitsOnly)
			return ErrInvalidCode
		}
		password = &code
	}

	editingID := c.modal.EditingID
	category := c.store.Classify(ctx, title, body)
	in := memostore.Input{Title: title, URL: url, Body: body, Password: password, Category: category}

	if editingID != nil {
		if err := c.store.Update(ctx, *editingID, in); err != nil {
			c.notifier.Alert(err.Error())
			return err
		}
		c.notifier.Toast(MsgUpdated)
	} else {
		if _, err := c.store.Create(ctx, in); err != nil {
			c.notifier.Alert(err.Error())
			return err
		}
		c.notifier.Toast(MsgSaved)
	}

	c.Close()
	c.page = 1
	c.resetUnlocked()
	return nil
}

// Unlock asks for the code of a protected memo and reveals it until the next
// navigation or mutation.
func (c *Controller) Unlock(id int64) error {
	m, ok := c.store.Get(id)
	if !ok {
		return ErrNotFound
	}
	if !m.Locked() || c.unlocked[id] {
		return nil
	}

	code, ok := c.prompter.Prompt(PromptUnlockCode)
	if !ok {
		return ErrCancelled
	}
	if !c.store.VerifyPassword(*m.Password, code) {
		c.notifier.Alert(MsgWrongPassword)
		return ErrWrongCode
	}
	c.unlocked[id] = true
	return nil
}

// Visible returns the memo when its body may be shown.
func (c *Controller) Visible(id int64) (models.Memo, error) {
	m, ok := c.store.Get(id)
	if !ok {
		return models.Memo{}, ErrNotFound
	}
	if m.Locked() && !c.unlocked[id] {
		return models.Memo{}, ErrLocked
	}
	return m, nil
}

// Delete removes memo id after confirmation. Declining returns ErrCancelled
// and changes nothing.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	if !c.confirmer.Confirm(ConfirmDeleteMemo) {
		return ErrCancelled
	}
	if err := c.store.Delete(ctx, id); err != nil {
		c.notifier.Alert(err.Error())
		return err
	}
	c.resetUnlocked()
	c.notifier.Toast(MsgDeleted)
	return nil
}

// Copy puts the body of a visible memo on the clipboard.
func (c *Controller) Copy(id int64) error {
	m, err := c.Visible(id)
	if err != nil {
		return err
	}
	if err := c.clipboard.Copy(m.Body); err != nil {
		c.notifier.Alert(err.Error())
		return err
	}
	c.notifier.Toast(MsgCopied)
	return nil
}

// GenerateTitle replaces the editor title with one generated from the body.
// On failure the previous title is restored.
func (c *Controller) GenerateTitle(ctx context.Context) error {
	if !c.modal.Open {
		return ErrModalClosed
	}
	body := strings.TrimSpace(c.modal.Form.Body)
	if body == "" {
		c.notifier.Alert(MsgBodyNeeded)
		return ErrEmptyBody
	}
	if c.assistant == nil {
		c.notifier.Alert(ErrNoAssistance.Error())
		return ErrNoAssistance
	}

	original := c.modal.Form.Title
	c.modal.Form.Title = MsgGenerating
	c.modal.Generating = true
	defer func() { c.modal.Generating = false }()

	title, err := c.assistant.GenerateTitle(ctx, body)
	if err == nil && strings.TrimSpace(title) == "" {
		err = errors.New("empty title")
	}
	if err != nil {
		c.logger.Warn(ctx, "title generation failed", "error", err)
		c.modal.Form.Title = original
		c.notifier.Alert(fmt.Sprintf("Title generation failed: %v", err))
		return err
	}

	c.modal.Form.Title = strings.TrimSpace(title)
	c.notifier.Toast(MsgTitleGenerated)
	return nil
}

// Summarize returns a short summary of a visible memo. The memo is not
// modified.
func (c *Controller) Summarize(ctx context.Context, id int64) (string, error) {
	m, err := c.Visible(id)
	if err != nil {
		return "", err
	}
	if c.assistant == nil {
		return "", ErrNoAssistance
	}
	summary, err := c.assistant.Summarize(ctx, m.Body)
	if err != nil {
		c.logger.Warn(ctx, "summarize failed", "id", id, "error", err)
		c.notifier.Alert(fmt.Sprintf("Summary failed: %v", err))
		return "", err
	}
	return strings.TrimSpace(summary), nil
}

// CurrentPage is 1-based.
func (c *Controller) CurrentPage() int {
	return c.page
}

// GoToPage moves to page n when it exists.
func (c *Controller) GoToPage(n int) bool {
	if n < 1 || n > c.store.TotalPages() {
		return false
	}
	c.page = n
	c.resetUnlocked()
	return true
}

func (c *Controller) NextPage() bool {
	if c.page >= c.store.TotalPages() {
		return false
	}
	c.page++
	c.resetUnlocked()
	return true
}

func (c *Controller) PreviousPage() bool {
	if c.page <= 1 {
		return false
	}
	c.page--
	c.resetUnlocked()
	return true
}

// FilterByCategory applies the filter (nil clears it) and returns to page 1.
func (c *Controller) FilterByCategory(category *string) {
	c.store.SetCategoryFilter(category)
	c.page = 1
	c.resetUnlocked()
}

// State snapshots the current view state.
func (c *Controller) State() ViewState {
	unlocked := make(map[int64]bool, len(c.unlocked))
	for id := range c.unlocked {
		unlocked[id] = true
	}
	return ViewState{
		Memos:          c.store.Page(c.page),
		Page:           c.page,
		TotalPages:     c.store.TotalPages(),
		Categories:     c.store.Categories(),
		ActiveCategory: c.store.CategoryFilter(),
		Unlocked:       unlocked,
		Modal:          c.modal,
	}
}

func (c *Controller) Render() RenderModel {
	return BuildRenderModel(c.State())
}
