package system

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/reclaimhq/reclaim/internal/backup"
	"github.com/reclaimhq/reclaim/internal/cli"
	"github.com/reclaimhq/reclaim/internal/constants"
	"github.com/reclaimhq/reclaim/internal/migration"
	"github.com/reclaimhq/reclaim/internal/models"
	"github.com/reclaimhq/reclaim/internal/storage/sqlite"
	"github.com/reclaimhq/reclaim/internal/timecalc"
	"github.com/reclaimhq/reclaim/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkStreakInvariant(ctx); err != nil {
			fmt.Printf("❌ Streak invariant: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Streak invariant: OK\n")
		}
	} else {
		fmt.Printf("⊘ Streak invariant: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkRatingBounds(ctx); err != nil {
			fmt.Printf("❌ Rating bounds: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Rating bounds: OK\n")
		}
	} else {
		fmt.Printf("⊘ Rating bounds: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkNotifiedThresholds(ctx); err != nil {
			fmt.Printf("❌ Celebrated milestones: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Celebrated milestones: OK\n")
		}
	} else {
		fmt.Printf("⊘ Celebrated milestones: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkTimezone(ctx); err != nil {
			fmt.Printf("❌ Timezone setting: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Timezone setting: OK\n")
		}
	} else {
		fmt.Printf("⊘ Timezone setting: SKIPPED (database not reachable)\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock sanity: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock sanity: OK\n")
	}

	if err := checkSingleProcess(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access migrations: %w", err)
	}
	runner := migration.NewRunner(db, subFS)

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}
	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'reclaim system migrate')", currentVersion, latestVersion)
	}
	return nil
}

// checkStreakInvariant verifies at most one streak is active and every
// ended streak has an end date at or after its start.
func checkStreakInvariant(ctx *cli.Context) error {
	active, err := ctx.Store.GetActiveStreaks()
	if err != nil {
		return fmt.Errorf("failed to get active streaks: %w", err)
	}
	if len(active) > 1 {
		return fmt.Errorf("found %d active streaks, expected at most 1", len(active))
	}

	streaks, err := ctx.Store.GetAllStreaks()
	if err != nil {
		return fmt.Errorf("failed to get streaks: %w", err)
	}
	for _, s := range streaks {
		if !s.IsActive {
			if s.EndDate == nil {
				return fmt.Errorf("streak %s is inactive but has no end date", s.ID)
			}
			if s.EndDate.Before(s.StartDate) {
				return fmt.Errorf("streak %s ends before it starts", s.ID)
			}
		}
	}
	return nil
}

func checkRatingBounds(ctx *cli.Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to get journal entries: %w", err)
	}
	for _, e := range entries {
		for _, rating := range []int{e.Energy, e.Confidence, e.Focus, e.Mood} {
			if rating < 1 || rating > 10 {
				return fmt.Errorf("entry %s has a rating outside [1,10]", e.ID)
			}
		}
	}
	return nil
}

// checkNotifiedThresholds verifies the persisted celebration set only
// contains catalog thresholds.
func checkNotifiedThresholds(ctx *cli.Context) error {
	notified, err := ctx.Store.GetNotifiedThresholds()
	if err != nil {
		return fmt.Errorf("failed to get celebrated milestones: %w", err)
	}

	catalog := make(map[int]bool, len(models.Milestones))
	for _, m := range models.Milestones {
		catalog[m.Days] = true
	}
	for _, d := range notified {
		if !catalog[d] {
			return fmt.Errorf("celebrated threshold %d is not in the milestone catalog", d)
		}
	}
	return nil
}

func checkTimezone(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if _, err := timecalc.LoadLocation(settings.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, consider creating one with 'reclaim backup create'")
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

// checkSingleProcess warns when another reclaim process is running; the
// SQLite backend assumes a single writer.
func checkSingleProcess() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	pid := os.Getpid()
	count := 0
	for _, p := range processes {
		if p.Pid() == pid {
			continue
		}
		name := strings.ToLower(p.Executable())
		if name == constants.AppName || strings.HasPrefix(name, constants.AppName+".") {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("%d other reclaim process(es) running; concurrent writes can corrupt the SQLite database", count)
	}
	return nil
}
