package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/furnishhq/quotation-api/internal/config"
)

const usage = `migrate runs goose SQL migrations against the configured database.

Usage:
  migrate [-dir path] <command> [args]

Commands:
  up              apply all pending migrations
  down            roll back the most recent migration
  redo            roll back and re-apply the most recent migration
  status          print the status of every migration
  version         print the current schema version
  create NAME     create a new timestamped SQL migration
`

func main() {
	dir := flag.String("dir", "./migrations", "directory with migration files")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*dir, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(dir, command string, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	// create works without a live database
	if command == "create" {
		if len(args) == 0 {
			return fmt.Errorf("create requires a migration name")
		}
		return goose.Create(nil, dir, args[0], "sql")
	}

	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	switch command {
	case "up":
		return goose.Up(db, dir)
	case "down":
		return goose.Down(db, dir)
	case "redo":
		return goose.Redo(db, dir)
	case "status":
		return goose.Status(db, dir)
	case "version":
		return goose.Version(db, dir)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
