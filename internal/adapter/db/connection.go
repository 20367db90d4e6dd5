package db

import (
	"context"
	"fmt"
	"path"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	schema "planner/db"
	"planner/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	conn, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	return conn, nil
}

// Migrate applies the embedded up migrations in order. The connection must
// allow multi statements.
func Migrate(ctx context.Context, conn *sqlx.DB, includeSeed bool) ([]string, error) {
	files, err := schema.UpFiles()
	if err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(files))
	for _, file := range files {
		if !includeSeed && isSeed(file) {
			continue
		}
		content, err := schema.Migrations.ReadFile(file)
		if err != nil {
			return applied, err
		}
		if _, err := conn.ExecContext(ctx, string(content)); err != nil {
			return applied, fmt.Errorf("apply %s: %w", file, err)
		}
		applied = append(applied, file)
	}
	return applied, nil
}

func isSeed(file string) bool {
	return strings.Contains(path.Base(file), "_seed_")
}
