package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/reomoon/memo/internal/client/client"
	"github.com/reomoon/memo/internal/client/config"
	"github.com/reomoon/memo/internal/client/models"
	"github.com/reomoon/memo/internal/client/repositories/storage"
	"github.com/reomoon/memo/internal/client/ui"
	"github.com/reomoon/memo/internal/common"
	"github.com/reomoon/memo/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type memRepo struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (r *memRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[key], nil
}

func (r *memRepo) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *memRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *memRepo) List(context.Context) (map[string][]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string][]byte, len(r.data))
	for k, v := range r.data {
		out[k] = v
	}
	return out, nil
}

func (r *memRepo) Clear(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = map[string][]byte{}
	return nil
}

func (r *memRepo) Atomic(ctx context.Context, fn func(ctx context.Context, r storage.Repository) error) error {
	return fn(ctx, r)
}

type fakeClient struct {
	title    string
	summary  string
	category string

	session    *client.Session
	user       *models.User
	userErr    error
	logoutIDs  []string
	redirects  []string
	authURL    string
	exchangeOK bool
}

func (f *fakeClient) Ping(context.Context) error { return nil }
func (f *fakeClient) GenerateTitle(context.Context, string) (string, error) {
	return f.title, nil
}
func (f *fakeClient) Summarize(context.Context, string) (string, error) { return f.summary, nil }
func (f *fakeClient) ClassifyCategory(context.Context, string) (string, error) {
	return f.category, nil
}
func (f *fakeClient) AuthURL(_ context.Context, redirect string) (string, error) {
	f.redirects = append(f.redirects, redirect)
	return f.authURL, nil
}
func (f *fakeClient) ExchangeCode(context.Context, string) (*client.Session, error) {
	if f.session == nil {
		return nil, client.ErrBadRequest
	}
	return f.session, nil
}
func (f *fakeClient) CurrentUser(context.Context, string) (*models.User, error) {
	return f.user, f.userErr
}
func (f *fakeClient) Logout(_ context.Context, id string) error {
	f.logoutIDs = append(f.logoutIDs, id)
	return nil
}

// ---- helpers ----

func testConfig() *config.Config {
	return &config.Config{
		ServerURL:      "http://localhost:3000",
		PageSize:       10,
		Backend:        config.BackendSQLite,
		RequestTimeout: time.Second,
		RedirectURL:    "http://localhost:3000/callback",
	}
}

func noTTY(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func newTestApp(t *testing.T, repo storage.Repository, fc *fakeClient, input string) (*App, *bytes.Buffer) {
	t.Helper()
	noTTY(t)
	out := &bytes.Buffer{}
	a := newApp(context.Background(), testConfig(), logging.NewNop(), repo, fc,
		bufio.NewReader(strings.NewReader(input)), out)
	return a, out
}

func lines(ls ...string) string { return strings.Join(ls, "\n") + "\n" }

func onlyMemo(t *testing.T, a *App) models.Memo {
	t.Helper()
	memos := a.controller.State().Memos
	require.Len(t, memos, 1)
	return memos[0]
}

// ---- tests ----

func TestAdd_SavesMemoAndClassifies(t *testing.T) {
	repo := newMemRepo()
	fc := &fakeClient{category: "업무"}
	a, out := newTestApp(t, repo, fc, lines(
		"Standup notes", // title
		"https://example.com",
		"first line",
		"second line",
		"",  // end of body
		"n", // no code
	))

	require.NoError(t, a.Add(context.Background()))

	m := onlyMemo(t, a)
	assert.Equal(t, "Standup notes", m.Title)
	assert.Equal(t, "https://example.com", m.URL)
	assert.Equal(t, "first line\nsecond line", m.Body)
	assert.Equal(t, "업무", m.Category)
	assert.Nil(t, m.Password)
	assert.False(t, a.controller.ModalOpen())

	assert.Contains(t, out.String(), "Memo saved.")
	assert.Contains(t, out.String(), "Standup notes")
	assert.Contains(t, string(repo.data[common.MemosKey]), `"title":"Standup notes"`)
}

func TestAdd_EmptyTitleIsGenerated(t *testing.T) {
	fc := &fakeClient{title: "  Groceries  ", category: "쇼핑"}
	a, out := newTestApp(t, newMemRepo(), fc, lines(
		"",
		"",
		"milk, eggs",
		"",
		"n",
	))

	require.NoError(t, a.Add(context.Background()))

	m := onlyMemo(t, a)
	assert.Equal(t, "Groceries", m.Title)
	assert.Equal(t, "쇼핑", m.Category)
	assert.Contains(t, out.String(), "Title generated.")
}

func TestAdd_EmptyBodyIsRejected(t *testing.T) {
	a, out := newTestApp(t, newMemRepo(), &fakeClient{}, lines(
		"Title only",
		"",
		"",
		"n",
	))

	err := a.Add(context.Background())
	require.Error(t, err)
	assert.Empty(t, a.controller.State().Memos)
	assert.Contains(t, out.String(), "Memo not saved.")
	assert.False(t, a.controller.ModalOpen())
}

func TestAdd_RejectedFormIsAskedAgain(t *testing.T) {
	a, out := newTestApp(t, newMemRepo(), &fakeClient{category: "업무"}, lines(
		// body missing
		"Plan", "", "", "n",
		// code too short
		"", "", "step one", "", "y", "12",
		// keep everything, valid code
		"", "", "", "y", "4321",
	))

	require.NoError(t, a.Add(context.Background()))

	m := onlyMemo(t, a)
	assert.Equal(t, "Plan", m.Title)
	assert.Equal(t, "step one", m.Body)
	require.NotNil(t, m.Password)
	assert.False(t, a.controller.ModalOpen())

	assert.Equal(t, 2, strings.Count(out.String(), "Memo not saved."))
	assert.Contains(t, out.String(), ui.MsgTitleBodyNeeded)
	assert.Contains(t, out.String(), ui.MsgCodeDigitsOnly)
	assert.Contains(t, out.String(), "Title [Plan]")
	assert.Contains(t, out.String(), "Memo saved.")
}

func TestAdd_CancelledCodeClosesEditor(t *testing.T) {
	a, _ := newTestApp(t, newMemRepo(), &fakeClient{}, lines(
		"Secret", "", "body", "", "y",
	))

	err := a.Add(context.Background())
	require.ErrorIs(t, err, ui.ErrCancelled)
	assert.Empty(t, a.controller.State().Memos)
	assert.False(t, a.controller.ModalOpen())
}

func TestEdit_DashClearsURL(t *testing.T) {
	a, out := newTestApp(t, newMemRepo(), &fakeClient{category: "학습"}, lines(
		"Docs", "https://go.dev", "read the tour", "", "n",
		"", "-", "", "n",
	))
	ctx := context.Background()

	require.NoError(t, a.Add(ctx))
	id := formatID(onlyMemo(t, a).ID)

	require.NoError(t, a.Edit(ctx, id))
	m := onlyMemo(t, a)
	assert.Empty(t, m.URL)
	assert.Equal(t, "Docs", m.Title)
	assert.Equal(t, "read the tour", m.Body)
	assert.Contains(t, out.String(), "URL [https://go.dev] (- to clear)")
}

func TestLockedMemo_EditWithoutUnlock(t *testing.T) {
	a, out := newTestApp(t, newMemRepo(), &fakeClient{category: "기타"}, lines(
		// add
		"Secret", "", "pin is 42", "", "y", "1234",
		// edit: keep title and url, new body, keep lock with a new code
		"", "", "pin is 43", "", "y", "5678",
		// unlock with the old code, then the new one
		"1234",
		"5678",
	))
	ctx := context.Background()

	require.NoError(t, a.Add(ctx))
	m := onlyMemo(t, a)
	require.NotNil(t, m.Password)
	id := formatID(m.ID)
	assert.Contains(t, out.String(), "🔒 Locked memo")

	require.NoError(t, a.Edit(ctx, id))
	m = onlyMemo(t, a)
	assert.Equal(t, "Secret", m.Title)
	assert.Equal(t, "pin is 43", m.Body)
	require.NotNil(t, m.Password)
	assert.Contains(t, out.String(), "Memo updated.")

	_, err := a.controller.Visible(m.ID)
	assert.ErrorIs(t, err, errLockedForTest)

	require.Error(t, a.Unlock(ctx, id))
	assert.Contains(t, out.String(), "Wrong password.")

	require.NoError(t, a.Unlock(ctx, id))
	assert.Contains(t, out.String(), "pin is 43")
}

func TestDelete_ConfirmAndDecline(t *testing.T) {
	a, out := newTestApp(t, newMemRepo(), &fakeClient{category: "일상"}, lines(
		"Walk", "", "park", "", "n",
		"n", // decline delete
		"y", // confirm delete
	))
	ctx := context.Background()

	require.NoError(t, a.Add(ctx))
	id := formatID(onlyMemo(t, a).ID)

	require.Error(t, a.Delete(ctx, id))
	assert.Len(t, a.controller.State().Memos, 1)

	require.NoError(t, a.Delete(ctx, id))
	assert.Empty(t, a.controller.State().Memos)
	assert.Contains(t, out.String(), "Memo deleted.")
	assert.Contains(t, out.String(), "No memos yet. Add one!")
}

func TestCommands_InvalidArguments(t *testing.T) {
	a, out := newTestApp(t, newMemRepo(), &fakeClient{}, "")
	ctx := context.Background()

	assert.ErrorIs(t, a.Edit(ctx, "abc"), errUsage)
	assert.ErrorIs(t, a.Delete(ctx, "x"), errUsage)
	assert.ErrorIs(t, a.GoToPage(ctx, "2"), errUsage)
	assert.Contains(t, out.String(), "No such page: 2")

	require.Error(t, a.Copy(ctx, "42"))
	require.Error(t, a.Unlock(ctx, "42"))
	require.Error(t, a.Summarize(ctx, "42"))
	assert.Contains(t, out.String(), "memo not found")
}

func TestPagingFilterAndStatus(t *testing.T) {
	repo := newMemRepo()
	var seeded []models.Memo
	for i := 0; i < 12; i++ {
		cat := "업무"
		if i%3 == 0 {
			cat = "쇼핑"
		}
		seeded = append(seeded, models.Memo{
			ID: int64(1000 - i), Title: "memo " + formatID(int64(i)), Body: "body", Category: cat,
			CreatedAt: "2025. 3. 7. 오후 2:05:09",
		})
	}
	repo.data[common.MemosKey] = mustJSON(t, seeded)

	a, out := newTestApp(t, repo, &fakeClient{}, "")
	ctx := context.Background()

	assert.Equal(t, " (p1/2)", a.getStatus())

	require.NoError(t, a.PreviousPage(ctx))
	assert.Contains(t, out.String(), "Already on the first page.")

	require.NoError(t, a.NextPage(ctx))
	assert.Equal(t, 2, a.controller.CurrentPage())
	require.NoError(t, a.NextPage(ctx))
	assert.Contains(t, out.String(), "Already on the last page.")

	require.NoError(t, a.GoToPage(ctx, "1"))
	assert.Equal(t, 1, a.controller.CurrentPage())

	require.NoError(t, a.Filter(ctx, []string{"쇼핑"}))
	assert.Equal(t, " (#쇼핑)", a.getStatus())
	assert.Len(t, a.controller.Render().Cards, 4)

	require.NoError(t, a.Filter(ctx, nil))
	assert.Equal(t, " (p1/2)", a.getStatus())

	out.Reset()
	require.NoError(t, a.Categories(ctx))
	assert.Equal(t, "쇼핑\n업무\n", out.String())

	a.userName = "octocat"
	assert.Equal(t, " (octocat p1/2)", a.getStatus())
}

func TestSummarize_PrintsSummary(t *testing.T) {
	fc := &fakeClient{summary: " short version ", category: "학습"}
	a, out := newTestApp(t, newMemRepo(), fc, lines("Notes", "", "long text", "", "n"))
	ctx := context.Background()

	require.NoError(t, a.Add(ctx))
	require.NoError(t, a.Summarize(ctx, formatID(onlyMemo(t, a).ID)))
	assert.Contains(t, out.String(), "short version\n")
}

func TestAuthCommands(t *testing.T) {
	octocat := models.User{ID: 1, Login: "octocat", Name: "The Octocat"}
	fc := &fakeClient{
		authURL: "https://github.com/login/oauth/authorize?client_id=abc",
		session: &client.Session{ID: "sess-1", User: octocat},
		user:    &octocat,
	}
	repo := newMemRepo()
	a, out := newTestApp(t, repo, fc, lines("y"))
	ctx := context.Background()

	require.NoError(t, a.Login(ctx))
	assert.Equal(t, []string{"http://localhost:3000/callback"}, fc.redirects)
	assert.Contains(t, out.String(), fc.authURL)

	require.NoError(t, a.Code(ctx, "code-1"))
	assert.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Welcome, The Octocat!")
	assert.Equal(t, "sess-1", string(repo.data[common.SessionIDKey]))

	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "The Octocat (@octocat)")

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, []string{"sess-1"}, fc.logoutIDs)
	assert.Contains(t, out.String(), "Logged out.")

	require.ErrorIs(t, a.WhoAmI(ctx), errNotLoggedInForTest)
	assert.Contains(t, out.String(), "Not logged in.")
}

func TestCode_Failure(t *testing.T) {
	a, out := newTestApp(t, newMemRepo(), &fakeClient{}, "")

	require.Error(t, a.Code(context.Background(), "bad"))
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Login failed:")
}

func TestRestoreSession(t *testing.T) {
	octocat := models.User{ID: 1, Login: "octocat"}
	repo := newMemRepo()
	repo.data[common.SessionIDKey] = []byte("sess-9")

	a, _ := newTestApp(t, repo, &fakeClient{user: &octocat}, "")
	a.restoreSession(context.Background())
	assert.Equal(t, "octocat", a.userName)
}

func TestClose_RunsClosersOnce(t *testing.T) {
	noTTY(t)
	calls := 0
	a := newApp(context.Background(), testConfig(), logging.NewNop(), newMemRepo(), &fakeClient{},
		bufio.NewReader(strings.NewReader("")), &bytes.Buffer{},
		func() error { calls++; return nil })

	a.Close()
	a.Close()
	assert.Equal(t, 1, calls)
}
