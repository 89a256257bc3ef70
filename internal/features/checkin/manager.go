// Package checkin runs the guided daily check-in: a strictly sequential
// question/answer dialog per (channel, user), fed by ordinary message
// events and bounded by a per-question timeout.
//
// The manager keeps one in-flight session per (channel, user) key. Every
// guild message is offered to the manager first; when it matches an active
// session it is consumed as that session's answer and never reaches the
// rest of the message pipeline.
package checkin

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ironkeep/fitness-bot/internal/common"
	"github.com/ironkeep/fitness-bot/internal/features/logbook"
	"github.com/ironkeep/fitness-bot/internal/features/scoring"
)

// SendFunc delivers one plain message to a channel.
type SendFunc func(channelID, content string) error

// sessionKey identifies one in-flight dialog.
type sessionKey struct {
	ChannelID string
	UserID    string
}

// session is the state of one running dialog. The goroutine in run owns
// all fields; replies is the only cross-goroutine channel.
type session struct {
	key      sessionKey
	mention  string
	username string
	date     string // day the answers count toward
	label    string // "today" / "yesterday", only used in prose
	replies  chan string
}

// Manager owns all in-flight check-in sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[sessionKey]*session

	logs    *logbook.Service
	send    SendFunc
	timeout time.Duration
}

// NewManager creates a session manager. timeout is the per-question wait
// before a default is assumed.
func NewManager(logs *logbook.Service, send SendFunc, timeout time.Duration) *Manager {
	return &Manager{
		sessions: make(map[sessionKey]*session),
		logs:     logs,
		send:     send,
		timeout:  timeout,
	}
}

// Start begins a dialog for the user in the channel, logging toward date.
// Returns common.ErrCheckinActive when one is already running for the
// same (channel, user).
func (m *Manager) Start(ctx context.Context, channelID, userID, mention, username, date, label string) error {
	key := sessionKey{ChannelID: channelID, UserID: userID}

	m.mu.Lock()
	if _, exists := m.sessions[key]; exists {
		m.mu.Unlock()
		return common.ErrCheckinActive
	}
	sess := &session{
		key:      key,
		mention:  mention,
		username: username,
		date:     date,
		label:    label,
		replies:  make(chan string, 1),
	}
	m.sessions[key] = sess
	m.mu.Unlock()

	go m.run(ctx, sess)
	return nil
}

// Offer routes a message to a matching session. It reports whether the
// message was consumed as a dialog answer. A session busy processing the
// previous answer drops the extra message, same as any other chatter.
func (m *Manager) Offer(channelID, userID, content string) bool {
	m.mu.Lock()
	sess, ok := m.sessions[sessionKey{ChannelID: channelID, UserID: userID}]
	m.mu.Unlock()
	if !ok {
		return false
	}

	select {
	case sess.replies <- content:
		return true
	default:
		return false
	}
}

// ActiveSessions reports how many dialogs are in flight.
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) remove(key sessionKey) {
	m.mu.Lock()
	delete(m.sessions, key)
	m.mu.Unlock()
}

// run walks the question sequence, then persists and summarizes.
func (m *Manager) run(ctx context.Context, sess *session) {
	defer m.remove(sess.key)

	answers := make(map[string]float64, len(questions))
	for _, q := range questions {
		val, err := m.askOne(ctx, sess, q)
		if err != nil {
			log.WithFields(log.Fields{
				"user_id": sess.key.UserID,
				"channel": sess.key.ChannelID,
			}).Debug("check-in aborted")
			return
		}
		answers[q.Key] = val
	}

	m.finish(ctx, sess, answers)
}

// askOne sends the prompt and waits for an accepted answer, the timeout,
// or shutdown. Invalid input re-prompts without advancing and restarts
// the timeout, exactly like a fresh question.
func (m *Manager) askOne(ctx context.Context, sess *session, q Question) (float64, error) {
	m.sendTo(sess, q.PromptFor(sess.mention, sess.label))

	for {
		timer := time.NewTimer(m.timeout)
		select {
		case <-ctx.Done():
			timer.Stop()
			return 0, common.ErrCheckinClosed

		case <-timer.C:
			m.sendTo(sess, fmt.Sprintf("%s timed out, using default `%s`.", sess.mention, q.DefaultLabel()))
			return 0, nil

		case reply := <-sess.replies:
			timer.Stop()
			val, ok, reprompt := q.Parse(reply)
			if !ok {
				m.sendTo(sess, reprompt)
				continue
			}
			return val, nil
		}
	}
}

// finish scores and persists the non-zero answers, then posts the
// session summary. Zero/default answers are not persisted: an empty
// answer is "nothing to log", not a zero-point entry.
func (m *Manager) finish(ctx context.Context, sess *session, answers map[string]float64) {
	type pending struct {
		category logbook.Category
		value    float64
		points   float64
	}
	var entries []pending

	if minutes := int(answers["strength"]); minutes > 0 {
		entries = append(entries, pending{logbook.CategoryStrength, float64(minutes), scoring.StrengthPoints(minutes)})
	}
	if steps := int(answers["steps"]); steps > 0 {
		entries = append(entries, pending{logbook.CategorySteps, float64(steps), scoring.StepsPoints(steps)})
	}
	if minutes := int(answers["cardio"]); minutes > 0 {
		entries = append(entries, pending{logbook.CategoryCardio, float64(minutes), scoring.CardioPoints(minutes)})
	}
	if hours := answers["sleep"]; hours > 0 {
		entries = append(entries, pending{logbook.CategorySleep, hours, scoring.SleepPoints(hours)})
	}

	heavyMeals, shakes := int(answers["heavy_meals"]), int(answers["shakes"])
	if heavyMeals > 0 || shakes > 0 {
		entries = append(entries, pending{logbook.CategoryProtein,
			float64(heavyMeals + shakes), scoring.ProteinPoints(heavyMeals, shakes)})
	}

	vitamins, creatine := answers["vitamins"] > 0, answers["creatine"] > 0
	magnesium, omega3 := answers["magnesium"] > 0, answers["omega3"] > 0
	if vitamins || creatine || magnesium || omega3 {
		entries = append(entries, pending{logbook.CategorySupplements,
			float64(scoring.SupplementCount(vitamins, creatine, magnesium, omega3)),
			scoring.SupplementPoints(vitamins, creatine, magnesium, omega3)})
	}

	if ounces := int(answers["water"]); ounces > 0 {
		entries = append(entries, pending{logbook.CategoryWater, float64(ounces), scoring.WaterPoints(ounces)})
	}
	if drinks := int(answers["alcohol"]); drinks > 0 {
		entries = append(entries, pending{logbook.CategoryAlcohol, float64(drinks), scoring.AlcoholPenalty(drinks)})
	}
	if count := int(answers["pastry"]); count > 0 {
		entries = append(entries, pending{logbook.CategoryPastry, float64(count), scoring.PastryPenalty(count)})
	}
	if meals := int(answers["fastfood"]); meals > 0 {
		entries = append(entries, pending{logbook.CategoryFastFood, float64(meals), scoring.FastFoodPenalty(meals)})
	}

	for _, e := range entries {
		_, err := m.logs.Log(ctx, sess.key.UserID, sess.username, sess.date, e.category, e.value, e.points)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"user_id":  sess.key.UserID,
				"category": e.category,
			}).Error("check-in entry failed to save")
			m.sendTo(sess, "❌ Couldn't save part of your check-in. Your other answers were logged.")
		}
	}

	m.sendTo(sess, m.summary(ctx, sess))
}

// summary builds the closing message: everything logged for the date plus
// the day's running total.
func (m *Manager) summary(ctx context.Context, sess *session) string {
	breakdown, err := m.logs.DailyBreakdown(ctx, sess.key.UserID, sess.date)
	if err != nil {
		log.WithError(err).WithField("user_id", sess.key.UserID).Error("check-in summary query failed")
		return fmt.Sprintf("✅ Check-in complete for %s — but the summary couldn't be loaded.", sess.mention)
	}
	total, err := m.logs.DailyTotal(ctx, sess.key.UserID, sess.date)
	if err != nil {
		log.WithError(err).WithField("user_id", sess.key.UserID).Error("check-in total query failed")
		return fmt.Sprintf("✅ Check-in complete for %s — but the summary couldn't be loaded.", sess.mention)
	}

	lines := []string{fmt.Sprintf("✅ **Check-in complete** for %s on **%s**:", sess.mention, sess.date)}
	for _, ct := range breakdown {
		lines = append(lines, fmt.Sprintf("- **%s**: %s pts", ct.Category, common.FormatPoints(ct.Points)))
	}
	lines = append(lines, fmt.Sprintf("\n**Total for %s:** `%s pts`", sess.label, common.FormatPoints(total)))
	return strings.Join(lines, "\n")
}

func (m *Manager) sendTo(sess *session, content string) {
	if err := m.send(sess.key.ChannelID, content); err != nil {
		log.WithError(err).WithField("channel", sess.key.ChannelID).Error("failed to send check-in message")
	}
}
