package app

// RetentionSession is one user's active opt-in to burn mode. At most one
// session exists per user across all teams.
type RetentionSession struct {
	ID         int64
	UserID     string
	TeamID     string
	ChannelID  string
	ActivateAt int64
	ExpireAt   int64
}

// CapturedMessage is one post queued for deletion. ID is assigned by the
// store and orders the burn.
type CapturedMessage struct {
	ID        int64
	PostID    string
	UserID    string
	TeamID    string
	ChannelID string
	CreateAt  int64
}

// SessionStore is the durable record access for sessions and the message
// ledger.
type SessionStore interface {
	// CreateSession inserts the session, enforcing at most one session per
	// user across all teams and at most maxTeamSessions sessions in the
	// team, atomically against concurrent inserts. ErrSessionExists and
	// ErrTeamFull report the violated limit.
	CreateSession(session RetentionSession, maxTeamSessions int) error

	// GetSession finds the user's session in any team. ErrNotFound when
	// there is none.
	GetSession(userID string) (*RetentionSession, error)

	GetAllSessions() ([]RetentionSession, error)

	CountSessionsForTeam(teamID string) (int, error)

	// RemoveSession is idempotent; removing an absent session is not an
	// error.
	RemoveSession(userID, teamID string) error

	CaptureMessage(msg CapturedMessage) error

	// GetMessages returns the ledger entries for (user, team) in ascending
	// capture order.
	GetMessages(userID, teamID string) ([]CapturedMessage, error)

	// RemoveMessage is idempotent.
	RemoveMessage(id int64) error
}
