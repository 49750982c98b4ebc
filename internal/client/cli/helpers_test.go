package cli

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/reomoon/memo/internal/client/services"
	"github.com/reomoon/memo/internal/client/ui"
	"github.com/stretchr/testify/require"
)

var (
	errLockedForTest      = ui.ErrLocked
	errNotLoggedInForTest = services.ErrNotLoggedIn
)

func formatID(id int64) string { return strconv.FormatInt(id, 10) }

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
