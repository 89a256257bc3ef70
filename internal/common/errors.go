// errors.go defines the sentinel errors shared by the
// feature packages. Handlers compare against these with errors.Is to pick
// a user-facing reply instead of leaking storage errors into chat.

package common

import "errors"

// Check-in dialog errors
var (
	// ErrCheckinActive — the user already has a check-in running in this channel
	ErrCheckinActive = errors.New("you already have a check-in running in this channel")
	// ErrCheckinClosed — the session was shut down before the dialog finished
	ErrCheckinClosed = errors.New("check-in session closed")
)

// Broadcast errors
var (
	// ErrNoWritableChannel — no text channel in the guild accepts our messages
	ErrNoWritableChannel = errors.New("no writable text channel in guild")
	// ErrNoMembers — the guild has no human members to tag
	ErrNoMembers = errors.New("no human members in guild")
)
