package sqlstore

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/pkg/errors"

	"github.com/ericzzh/mattermost-plugin-burn/server/app"
	"github.com/ericzzh/mattermost-plugin-burn/server/bot"
)

type sessionStore struct {
	pluginAPI    PluginAPIClient
	log          bot.Logger
	store        *SQLStore
	queryBuilder sq.StatementBuilderType
}

// NewSessionStore creates the durable store for retention sessions and the
// captured message ledger.
func NewSessionStore(pluginAPI PluginAPIClient, log bot.Logger, sqlStore *SQLStore) app.SessionStore {
	newStore := &sessionStore{
		pluginAPI:    pluginAPI,
		log:          log,
		store:        sqlStore,
		queryBuilder: sqlStore.builder,
	}
	return newStore
}

func (ss *sessionStore) CreateSession(session app.RetentionSession, maxTeamSessions int) error {
	// conditional insert so the capacity check and the insert are a single
	// statement; the unique index on UserID guards the one-session-per-user
	// limit. mysql wants FROM DUAL for a constant SELECT with a WHERE, and
	// refuses to read the insert target without the derived table.
	selectValues := "SELECT ?, ?, ?, ?, ?"
	if ss.store.db.DriverName() == model.DatabaseDriverMysql {
		selectValues += " FROM DUAL"
	}

	query := ss.store.db.Rebind(`
		INSERT INTO BURN_RetentionSessions (UserID, TeamID, ChannelID, ActivateAt, ExpireAt)
		` + selectValues + `
		WHERE (SELECT COUNT(*) FROM (SELECT UserID FROM BURN_RetentionSessions WHERE TeamID = ?) AS existing) < ?
	`)

	res, err := ss.store.db.Exec(query,
		session.UserID, session.TeamID, session.ChannelID, session.ActivateAt, session.ExpireAt,
		session.TeamID, maxTeamSessions)
	if err != nil {
		if isDuplicateKeyError(err) {
			return app.ErrSessionExists
		}
		return errors.Wrapf(err, "failed to insert session. user:%s team:%s", session.UserID, session.TeamID)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "failed to read insert result. user:%s team:%s", session.UserID, session.TeamID)
	}
	if rows == 0 {
		return app.ErrTeamFull
	}

	return nil
}

// isDuplicateKeyError recognizes a unique-index violation from the postgres
// and mysql drivers without importing either.
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint")
}

func (ss *sessionStore) GetSession(userID string) (*app.RetentionSession, error) {
	var session app.RetentionSession

	err := ss.store.getBuilder(ss.store.db, &session, ss.queryBuilder.
		Select("ID", "UserID", "TeamID", "ChannelID", "ActivateAt", "ExpireAt").
		From("BURN_RetentionSessions").
		Where(sq.Eq{"UserID": userID}))
	if err == sql.ErrNoRows {
		return nil, app.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select session. user:%s", userID)
	}

	return &session, nil
}

func (ss *sessionStore) GetAllSessions() ([]app.RetentionSession, error) {
	sessions := []app.RetentionSession{}

	err := ss.store.selectBuilder(ss.store.db, &sessions, ss.queryBuilder.
		Select("ID", "UserID", "TeamID", "ChannelID", "ActivateAt", "ExpireAt").
		From("BURN_RetentionSessions"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select all sessions")
	}

	return sessions, nil
}

func (ss *sessionStore) CountSessionsForTeam(teamID string) (int, error) {
	var count int

	err := ss.store.getBuilder(ss.store.db, &count, ss.queryBuilder.
		Select("COUNT(*)").
		From("BURN_RetentionSessions").
		Where(sq.Eq{"TeamID": teamID}))
	if err != nil {
		return 0, errors.Wrapf(err, "failed to count sessions. team:%s", teamID)
	}

	return count, nil
}

func (ss *sessionStore) RemoveSession(userID, teamID string) error {
	_, err := ss.store.execBuilder(ss.store.db, ss.queryBuilder.
		Delete("BURN_RetentionSessions").
		Where(sq.And{sq.Eq{"UserID": userID}, sq.Eq{"TeamID": teamID}}))
	if err != nil {
		return errors.Wrapf(err, "failed to delete session. user:%s team:%s", userID, teamID)
	}

	return nil
}

func (ss *sessionStore) CaptureMessage(msg app.CapturedMessage) error {
	_, err := ss.store.execBuilder(ss.store.db, ss.queryBuilder.
		Insert("BURN_CapturedMessages").
		Columns("PostID", "UserID", "TeamID", "ChannelID", "CreateAt").
		Values(msg.PostID, msg.UserID, msg.TeamID, msg.ChannelID, msg.CreateAt))
	if err != nil {
		return errors.Wrapf(err, "failed to insert captured message. post:%s", msg.PostID)
	}

	return nil
}

func (ss *sessionStore) GetMessages(userID, teamID string) ([]app.CapturedMessage, error) {
	msgs := []app.CapturedMessage{}

	err := ss.store.selectBuilder(ss.store.db, &msgs, ss.queryBuilder.
		Select("ID", "PostID", "UserID", "TeamID", "ChannelID", "CreateAt").
		From("BURN_CapturedMessages").
		Where(sq.And{sq.Eq{"UserID": userID}, sq.Eq{"TeamID": teamID}}).
		OrderBy("ID ASC"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select captured messages. user:%s team:%s", userID, teamID)
	}

	return msgs, nil
}

func (ss *sessionStore) RemoveMessage(id int64) error {
	_, err := ss.store.execBuilder(ss.store.db, ss.queryBuilder.
		Delete("BURN_CapturedMessages").
		Where(sq.Eq{"ID": id}))
	if err != nil {
		return errors.Wrapf(err, "failed to delete captured message. id:%d", id)
	}

	return nil
}
