// Package reminder nudges members once per day: the first time someone
// speaks in an allowed channel, the bot replies with their score so far,
// logging hints and today's scoreboard.
package reminder

import "sync"

// DayCache remembers which day each guild member was last reminded on.
// Stale entries are overwritten on the next mark, so it never needs a
// background sweep.
type DayCache struct {
	mu   sync.Mutex
	seen map[cacheKey]string
}

type cacheKey struct {
	GuildID string
	UserID  string
}

func NewDayCache() *DayCache {
	return &DayCache{seen: make(map[cacheKey]string)}
}

// MarkOnce records that the member was reminded on date and reports whether
// this was the first mark for that date. Check-and-set under one lock, so
// two concurrent messages never both win.
func (c *DayCache) MarkOnce(guildID, userID, date string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{GuildID: guildID, UserID: userID}
	if c.seen[key] == date {
		return false
	}
	c.seen[key] = date
	return true
}
