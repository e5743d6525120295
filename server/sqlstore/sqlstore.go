package sqlstore

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/pkg/errors"

	"github.com/ericzzh/mattermost-plugin-burn/server/bot"
)

// SQLStore provides the underlying database driver and the query builder
// shared by the record stores.
type SQLStore struct {
	log     bot.Logger
	db      *sqlx.DB
	builder sq.StatementBuilderType
}

// New constructs a new instance of SQLStore on the server's master
// database and sets up the plugin's tables.
func New(pluginAPI PluginAPIClient, log bot.Logger) (*SQLStore, error) {
	origDB, err := pluginAPI.Store.GetMasterDB()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get master db")
	}
	db := sqlx.NewDb(origDB, pluginAPI.Store.DriverName())

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if pluginAPI.Store.DriverName() == model.DatabaseDriverPostgres {
		builder = builder.PlaceholderFormat(sq.Dollar)
	}

	// the server maps struct fields lowercased on mysql; keep our column
	// names as-is on both drivers
	if pluginAPI.Store.DriverName() == model.DatabaseDriverMysql {
		db.MapperFunc(func(s string) string { return s })
	}

	sqlStore := &SQLStore{
		log:     log,
		db:      db,
		builder: builder,
	}

	if err := sqlStore.setupTables(); err != nil {
		return nil, errors.Wrapf(err, "failed to set up tables")
	}

	return sqlStore, nil
}

func (sqlStore *SQLStore) setupTables() error {
	autoIncrementPK := "ID BIGINT AUTO_INCREMENT PRIMARY KEY"
	if sqlStore.db.DriverName() == model.DatabaseDriverPostgres {
		autoIncrementPK = "ID BIGSERIAL PRIMARY KEY"
	}

	if _, err := sqlStore.db.Exec(`
		CREATE TABLE IF NOT EXISTS BURN_RetentionSessions (
			` + autoIncrementPK + `,
			UserID VARCHAR(26) NOT NULL UNIQUE,
			TeamID VARCHAR(26) NOT NULL,
			ChannelID VARCHAR(26) NOT NULL,
			ActivateAt BIGINT NOT NULL,
			ExpireAt BIGINT NOT NULL
		)
	`); err != nil {
		return errors.Wrapf(err, "failed to create BURN_RetentionSessions")
	}

	if _, err := sqlStore.db.Exec(`
		CREATE TABLE IF NOT EXISTS BURN_CapturedMessages (
			` + autoIncrementPK + `,
			PostID VARCHAR(26) NOT NULL,
			UserID VARCHAR(26) NOT NULL,
			TeamID VARCHAR(26) NOT NULL,
			ChannelID VARCHAR(26) NOT NULL,
			CreateAt BIGINT NOT NULL
		)
	`); err != nil {
		return errors.Wrapf(err, "failed to create BURN_CapturedMessages")
	}

	return nil
}

type queryer interface {
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
}

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

type builder interface {
	ToSql() (string, []interface{}, error)
}

func (sqlStore *SQLStore) execBuilder(e execer, b builder) (sql.Result, error) {
	sqlString, args, err := b.ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build sql")
	}

	return e.Exec(sqlString, args...)
}

func (sqlStore *SQLStore) getBuilder(q queryer, dest interface{}, b builder) error {
	sqlString, args, err := b.ToSql()
	if err != nil {
		return errors.Wrapf(err, "failed to build sql")
	}

	return q.Get(dest, sqlString, args...)
}

func (sqlStore *SQLStore) selectBuilder(q queryer, dest interface{}, b builder) error {
	sqlString, args, err := b.ToSql()
	if err != nil {
		return errors.Wrapf(err, "failed to build sql")
	}

	return q.Select(dest, sqlString, args...)
}
