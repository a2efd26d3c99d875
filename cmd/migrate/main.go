package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"menuflow/internal/config"
)

const usage = "Usage: migrate [up|down|steps N|force V|version]"

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("migrate: loading config: %v", err)
	}

	source := "file://db/migrations"
	if dir := os.Getenv("MENUFLOW_MIGRATIONS_DIR"); dir != "" {
		source = "file://" + dir
	}

	m, err := migrate.New(source, cfg.DB.DSN())
	if err != nil {
		log.Fatalf("migrate: opening %s: %v", source, err)
	}
	defer m.Close()

	if err := run(m, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

func run(m *migrate.Migrate, cmd string, args []string) error {
	switch cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		log.Println("schema is up to date")
		return nil

	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		log.Println("schema rolled back")
		return nil

	case "steps":
		if len(args) < 1 {
			return errors.New("steps requires a count, e.g. `migrate steps -1`")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad step count %q: %w", args[0], err)
		}
		if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		log.Printf("moved %d step(s)", n)
		return nil

	case "force":
		// recover from a dirty state by pinning the recorded version
		if len(args) < 1 {
			return errors.New("force requires a version")
		}
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad version %q: %w", args[0], err)
		}
		if err := m.Force(v); err != nil {
			return err
		}
		log.Printf("version forced to %d", v)
		return nil

	case "version":
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied yet")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("version %d (dirty: %v)\n", v, dirty)
		return nil

	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}
