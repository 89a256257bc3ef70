package checkin

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ironkeep/fitness-bot/internal/common"
	"github.com/ironkeep/fitness-bot/internal/db/sqlite"
	"github.com/ironkeep/fitness-bot/internal/features/logbook"
)

// recorder captures everything the dialog sends.
type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) send(channelID, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, content)
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.msgs)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}

func newTestManager(t *testing.T, timeout time.Duration) (*Manager, *logbook.Service, *recorder) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(context.Background(), db))

	logs := logbook.NewService(logbook.NewRepository(db))
	rec := &recorder{}
	return NewManager(logs, rec.send, timeout), logs, rec
}

// answer waits until the dialog has sent something new (the next prompt
// or a re-prompt), then feeds it the reply.
func answer(t *testing.T, m *Manager, rec *recorder, seen *int, reply string) {
	t.Helper()
	require.Eventually(t, func() bool { return rec.count() > *seen },
		2*time.Second, 2*time.Millisecond, "dialog never prompted before %q", reply)
	*seen = rec.count()
	require.True(t, m.Offer("chan1", "u1", reply), "dialog did not accept %q", reply)
}

func waitDone(t *testing.T, m *Manager) {
	t.Helper()
	require.Eventually(t, func() bool { return m.ActiveSessions() == 0 },
		5*time.Second, 2*time.Millisecond, "session never finished")
}

func TestDialogFullRunPersistsNonZeroAnswers(t *testing.T) {
	m, logs, rec := newTestManager(t, 2*time.Second)
	ctx := context.Background()

	date := common.Today()
	require.NoError(t, m.Start(ctx, "chan1", "u1", "@ana", "ana", date, "today"))

	seen := 0
	for _, reply := range []string{
		"45",    // strength minutes → 1.25 pts
		"0",     // cardio minutes
		"10000", // steps → 1.0 pt
		"skip",  // sleep
		"0",     // heavy meals
		"0",     // shakes
		"no", "skip", "no", "no", // supplements
		"0", // water
		"0", // alcohol
		"0", // pastry
		"0", // fastfood
	} {
		answer(t, m, rec, &seen, reply)
	}
	waitDone(t, m)

	breakdown, err := logs.DailyBreakdown(ctx, "u1", date)
	require.NoError(t, err)
	require.Equal(t, []logbook.CategoryTotal{
		{Category: logbook.CategorySteps, Points: 1.0},
		{Category: logbook.CategoryStrength, Points: 1.25},
	}, breakdown)

	total, err := logs.DailyTotal(ctx, "u1", date)
	require.NoError(t, err)
	require.Equal(t, 2.25, total)

	msgs := rec.all()
	summary := msgs[len(msgs)-1]
	require.Contains(t, summary, "Check-in complete")
	require.Contains(t, summary, "2.25 pts")
}

func TestDialogInvalidInputRepromptsWithoutAdvancing(t *testing.T) {
	m, logs, rec := newTestManager(t, 2*time.Second)
	ctx := context.Background()

	require.NoError(t, m.Start(ctx, "chan1", "u1", "@ana", "ana", common.Today(), "today"))

	seen := 0
	answer(t, m, rec, &seen, "banana") // invalid → re-prompt, same question
	answer(t, m, rec, &seen, "500")    // out of range → re-prompt
	answer(t, m, rec, &seen, "60")     // accepted → 1.5 pts
	for idx := 0; idx < len(questions)-1; idx++ {
		answer(t, m, rec, &seen, "skip")
	}
	waitDone(t, m)

	msgs := rec.all()
	require.Contains(t, msgs, "Please enter a valid number or `skip`.")
	require.Contains(t, msgs, "Please enter a value ≤ 300, or `skip`.")

	total, err := logs.DailyTotal(ctx, "u1", common.Today())
	require.NoError(t, err)
	require.Equal(t, 1.5, total)
}

func TestDialogTimeoutFallsBackToDefaultAndSkipsEntry(t *testing.T) {
	m, logs, rec := newTestManager(t, 20*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, m.Start(ctx, "chan1", "u1", "@ana", "ana", common.Today(), "today"))
	waitDone(t, m)

	// every question timed out to its default of zero → nothing persisted
	total, err := logs.DailyTotal(ctx, "u1", common.Today())
	require.NoError(t, err)
	require.Equal(t, 0.0, total)

	breakdown, err := logs.DailyBreakdown(ctx, "u1", common.Today())
	require.NoError(t, err)
	require.Empty(t, breakdown)

	timeouts := 0
	for _, msg := range rec.all() {
		if strings.Contains(msg, "timed out, using default") {
			timeouts++
		}
	}
	require.Equal(t, len(questions), timeouts)
}

func TestDialogRejectsSecondSessionSameKey(t *testing.T) {
	m, _, rec := newTestManager(t, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, m.Start(ctx, "chan1", "u1", "@ana", "ana", common.Today(), "today"))
	require.ErrorIs(t, m.Start(ctx, "chan1", "u1", "@ana", "ana", common.Today(), "today"),
		common.ErrCheckinActive)

	// a different channel or user is a separate key
	require.NoError(t, m.Start(ctx, "chan2", "u1", "@ana", "ana", common.Today(), "today"))
	require.NoError(t, m.Start(ctx, "chan1", "u2", "@bo", "bo", common.Today(), "today"))
	require.Equal(t, 3, m.ActiveSessions())

	cancel()
	waitDone(t, m)
	_ = rec
}

func TestOfferIgnoresMessagesWithoutSession(t *testing.T) {
	m, _, _ := newTestManager(t, time.Second)
	require.False(t, m.Offer("chan1", "u1", "hello"))
}
