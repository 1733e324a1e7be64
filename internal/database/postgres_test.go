package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	upErr, downErr error
	calls          *[]string
}

func (f fakeMigrator) Up() error {
	if f.calls != nil {
		*f.calls = append(*f.calls, "up")
	}
	return f.upErr
}

func (f fakeMigrator) Down() error {
	if f.calls != nil {
		*f.calls = append(*f.calls, "down")
	}
	return f.downErr
}

func restore() {
	pgxpoolNew = pgxpool.New
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// stubMigrator 讓 withMigrator 每一步都成功，最後交出 m
func stubMigrator(m migrateInstance) {
	sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) { return m, nil }
}

func TestNewPgxPool(t *testing.T) {
	t.Cleanup(restore)
	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return nil, errors.New("bad") }
	_, err := NewPgxPool(context.Background(), "url")
	require.Error(t, err)

	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return &pgxpool.Pool{}, nil }
	db, err := NewPgxPool(context.Background(), "url")
	require.NoError(t, err)
	require.NotNil(t, db)
}

func TestMigrationCommands(t *testing.T) {
	commands := map[string]func(string) error{
		"RunMigrations": RunMigrations,
		"RollbackAll":   RollbackAll,
	}

	for name, run := range commands {
		t.Run(name+" setup failures", func(t *testing.T) {
			for _, tc := range []struct {
				stage string
				fail  func()
			}{
				{"open migration db", func() {
					sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("boom") }
				}},
				{"migration driver", func() {
					postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, errors.New("boom") }
				}},
				{"migration source", func() {
					iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("boom") }
				}},
				{"migrator", func() {
					migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
						return nil, errors.New("boom")
					}
				}},
			} {
				t.Cleanup(restore)
				stubMigrator(fakeMigrator{})
				tc.fail()
				require.EqualError(t, run("url"), tc.stage+": boom")
			}
		})
	}

	t.Run("up", func(t *testing.T) {
		t.Cleanup(restore)
		calls := []string{}
		stubMigrator(fakeMigrator{calls: &calls})
		require.NoError(t, RunMigrations("url"))
		require.Equal(t, []string{"up"}, calls)

		stubMigrator(fakeMigrator{upErr: migrate.ErrNoChange})
		require.NoError(t, RunMigrations("url"))

		stubMigrator(fakeMigrator{upErr: errors.New("Dirty database version 2")})
		require.EqualError(t, RunMigrations("url"), "migrate up: Dirty database version 2")
	})

	t.Run("down", func(t *testing.T) {
		t.Cleanup(restore)
		calls := []string{}
		stubMigrator(fakeMigrator{calls: &calls})
		require.NoError(t, RollbackAll("url"))
		require.Equal(t, []string{"down"}, calls)

		stubMigrator(fakeMigrator{downErr: migrate.ErrNoChange})
		require.NoError(t, RollbackAll("url"))

		stubMigrator(fakeMigrator{downErr: errors.New("locked")})
		require.EqualError(t, RollbackAll("url"), "migrate down: locked")
	})
}

var spaces = regexp.MustCompile(`\s+`)

// readMigration 讀取嵌入的 migration，並壓縮空白、轉小寫以便比對
func readMigration(t *testing.T, name string) string {
	t.Helper()
	b, err := fs.ReadFile(migrationsFS, "migrations/"+name)
	require.NoError(t, err)
	return strings.ToLower(spaces.ReplaceAllString(string(b), " "))
}

func TestMigrationFiles(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	names := []string{}
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{
		"000001_create_users.up.sql",
		"000001_create_users.down.sql",
		"000002_create_projects.up.sql",
		"000002_create_projects.down.sql",
	}, names)
}

func TestUsersSchema(t *testing.T) {
	up := readMigration(t, "000001_create_users.up.sql")
	require.Contains(t, up, "create type user_role as enum ('user', 'admin')")
	require.Contains(t, up, "username text not null unique")
	require.Contains(t, up, "role user_role not null default 'user'")
	require.Contains(t, up, "last_login_at timestamptz")

	down := readMigration(t, "000001_create_users.down.sql")
	require.Less(t, strings.Index(down, "drop table if exists users"), strings.Index(down, "drop type if exists user_role"))
}

func TestAssignmentLedgerSchema(t *testing.T) {
	up := readMigration(t, "000002_create_projects.up.sql")
	require.Contains(t, up, "name text not null check (btrim(name) <> '')")

	// 刪除使用者或專案時，指派邊跟著消失
	require.Contains(t, up, "project_id integer not null references projects (id) on delete cascade")
	require.Contains(t, up, "user_id integer not null references users (id) on delete cascade")
	// 同一組 (project, user) 只有一條邊
	require.Contains(t, up, "primary key (project_id, user_id)")
	require.Contains(t, up, "on project_assignments (user_id)")

	down := readMigration(t, "000002_create_projects.down.sql")
	require.Less(t, strings.Index(down, "drop table if exists project_assignments"), strings.Index(down, "drop table if exists projects"))
}
