package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reclaimhq/reclaim/internal/cli"
	"github.com/reclaimhq/reclaim/internal/storage"
	"github.com/reclaimhq/reclaim/internal/storage/postgres"
	"github.com/reclaimhq/reclaim/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		// Don't delete if it's the source (user error protection)
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized reclaim storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	var sourceStore storage.Provider
	if strings.HasPrefix(sourcePath, "postgres://") || strings.HasPrefix(sourcePath, "postgresql://") {
		if valid, err := postgres.ValidateConnString(sourcePath); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return err
		}
		sourceStore = postgres.New(sourcePath)
	} else {
		sourceStore = sqlite.NewStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating settings...")
	settings, err := sourceStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Migrating streaks...")
	streaks, err := sourceStore.GetAllStreaks()
	if err != nil {
		return fmt.Errorf("failed to get streaks from source: %w", err)
	}
	for _, s := range streaks {
		if err := ctx.Store.AddStreak(s); err != nil {
			return fmt.Errorf("failed to add streak %s: %w", s.ID, err)
		}
	}
	fmt.Printf("    Migrated %d streaks\n", len(streaks))

	fmt.Println("  Migrating journal entries...")
	entries, err := sourceStore.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to get journal entries from source: %w", err)
	}
	for _, e := range entries {
		if err := ctx.Store.AddEntry(e); err != nil {
			return fmt.Errorf("failed to add journal entry %s: %w", e.ID, err)
		}
	}
	fmt.Printf("    Migrated %d journal entries\n", len(entries))

	fmt.Println("  Migrating celebrated milestones...")
	thresholds, err := sourceStore.GetNotifiedThresholds()
	if err != nil {
		return fmt.Errorf("failed to get celebrated milestones from source: %w", err)
	}
	if err := ctx.Store.SaveNotifiedThresholds(thresholds); err != nil {
		return fmt.Errorf("failed to save celebrated milestones to destination: %w", err)
	}
	fmt.Printf("    Migrated %d celebrated milestones\n", len(thresholds))

	return nil
}
