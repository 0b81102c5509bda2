package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/marketplace-core/internal/app"
	"github.com/jsamuelsen11/marketplace-core/internal/app/lifecycle"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/bounty"
	"github.com/jsamuelsen11/marketplace-core/internal/domain/policy"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/clock"
)

// seedBounty stores one open bounty owned by alice whose deadline is an
// hour after now, and returns the database path.
func seedBounty(t *testing.T, now time.Time) string {
	t.Helper()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "market.db")
	store, err := sqlite.Open(ctx, path, time.Second)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	machine := lifecycle.NewMachine(store, clock.NewManual(now),
		lifecycle.WithEvents(sqlite.NewEventLog(store.DB())),
	)
	svc := app.NewBountyService(app.NewCore(machine, policy.NewGate(), nil), nil)
	_, err = svc.CreateBounty(ctx, &bounty.Bounty{
		Owner:    "alice",
		Title:    "Fix the flaky build",
		Category: "go",
		Reward:   100,
		Deadline: now.Add(time.Hour),
	})
	require.NoError(t, err)
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decode[T any](t *testing.T, raw string) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

type listOutput struct {
	Items []map[string]any `json:"items"`
	Count int              `json:"count"`
}

func TestGet_Table(t *testing.T) {
	t.Parallel()

	path := seedBounty(t, time.Now().UTC())

	out, err := execute(t, "get", "bounty", "1", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "bounty")
	assert.Contains(t, out, "open")
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	path := seedBounty(t, time.Now().UTC())

	_, err := execute(t, "get", "bounty", "9", "--db", path)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown kind", args: []string{"get", "widget", "1"}},
		{name: "zero id", args: []string{"get", "bounty", "0"}},
		{name: "non-numeric id", args: []string{"get", "bounty", "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestList_StatusIndex(t *testing.T) {
	t.Parallel()

	path := seedBounty(t, time.Now().UTC())

	out, err := execute(t, "list", "bounty", "--db", path, "--index", "status", "--key", "open", "--json")
	require.NoError(t, err)
	got := decode[listOutput](t, out)
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, "alice", got.Items[0]["owner"])

	out, err = execute(t, "list", "bounty", "--db", path, "--index", "status", "--key", "expired", "--json")
	require.NoError(t, err)
	assert.Equal(t, 0, decode[listOutput](t, out).Count)
}

func TestList_UnknownIndex(t *testing.T) {
	t.Parallel()

	path := seedBounty(t, time.Now().UTC())

	_, err := execute(t, "list", "bounty", "--db", path, "--index", "color", "--key", "red")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSweep_ExpiresPastDeadline(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC().Truncate(time.Second)
	path := seedBounty(t, now)
	at := now.Add(2 * time.Hour).Format(time.RFC3339)

	out, err := execute(t, "sweep", "bounty", "--db", path, "--at", at)
	require.NoError(t, err)
	assert.Equal(t, "swept bounty: 1 transitioned\n", out)

	// A second sweep finds nothing left to move.
	out, err = execute(t, "sweep", "bounty", "--db", path, "--at", at, "--json")
	require.NoError(t, err)
	sweep := decode[map[string]any](t, out)
	assert.Equal(t, float64(0), sweep["transitioned"])

	out, err = execute(t, "get", "bounty", "1", "--db", path, "--json")
	require.NoError(t, err)
	assert.Equal(t, string(bounty.StatusExpired), decode[map[string]any](t, out)["status"])
}

func TestSweep_BeforeDeadline(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	path := seedBounty(t, now)

	out, err := execute(t, "sweep", "bounty", "--db", path, "--at", now.Add(time.Minute).Format(time.RFC3339))
	require.NoError(t, err)
	assert.Equal(t, "swept bounty: 0 transitioned\n", out)
}

func TestSweep_Rejects(t *testing.T) {
	t.Parallel()

	path := seedBounty(t, time.Now().UTC())

	_, err := execute(t, "sweep", "project", "--db", path)
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = execute(t, "sweep", "bounty", "--db", path, "--at", "tomorrow")
	assert.ErrorContains(t, err, "RFC3339")
}

func TestEvents_JournalAfterTransition(t *testing.T) {
	t.Parallel()

	path := seedBounty(t, time.Now().UTC())

	out, err := execute(t, "transition", "bounty", "1", "closed", "--as", "alice", "--db", path, "--json")
	require.NoError(t, err)
	assert.Equal(t, string(bounty.StatusClosed), decode[map[string]any](t, out)["status"])

	out, err = execute(t, "events", "bounty", "1", "--db", path, "--json")
	require.NoError(t, err)
	history := decode[listOutput](t, out)
	require.Equal(t, 2, history.Count)
	assert.Equal(t, string(domain.EventCreated), history.Items[0]["type"])
	assert.Equal(t, string(domain.EventTransitioned), history.Items[1]["type"])
	assert.Equal(t, "alice", history.Items[1]["actor"])

	out, err = execute(t, "events", "bounty", "1", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "open -> closed")
}

func TestTransition_Authorization(t *testing.T) {
	t.Parallel()

	path := seedBounty(t, time.Now().UTC())

	_, err := execute(t, "transition", "bounty", "1", "closed", "--db", path)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = execute(t, "transition", "bounty", "1", "closed", "--as", "mallory", "--db", path)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = execute(t, "transition", "bounty", "1", "awarded", "--as", "alice", "--db", path)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func writeProfile(t *testing.T, dbPath string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("log:\n  level: warn\n"), 0o600))
	ops := "store:\n  driver: sqlite\n  path: " + dbPath + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ops.yaml"), []byte(ops), 0o600))
	return dir
}

func TestProfile_ReadsStorePath(t *testing.T) {
	t.Parallel()

	path := seedBounty(t, time.Now().UTC())
	dir := writeProfile(t, path)

	out, err := execute(t, "get", "bounty", "1", "--profile", "ops", "--config-dir", dir, "--json")
	require.NoError(t, err)
	assert.Equal(t, "open", decode[map[string]any](t, out)["status"])
}

func TestProfile_FlagBeatsProfile(t *testing.T) {
	t.Parallel()

	path := seedBounty(t, time.Now().UTC())
	dir := writeProfile(t, filepath.Join(t.TempDir(), "elsewhere.db"))

	_, err := execute(t, "get", "bounty", "1", "--profile", "ops", "--config-dir", dir, "--db", path)
	require.NoError(t, err)
}

func TestProfile_Rejections(t *testing.T) {
	t.Parallel()

	dir := writeProfile(t, filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mem.yaml"), []byte("store:\n  driver: memory\n"), 0o600))

	_, err := execute(t, "get", "bounty", "1", "--profile", "mem", "--config-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs sqlite")

	_, err = execute(t, "get", "bounty", "1", "--profile", "ops", "--config-dir", dir, "--log-level", "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")

	_, err = execute(t, "get", "bounty", "1", "--config-file", filepath.Join(dir, "ops.yaml"))
	require.Error(t, err)
}
