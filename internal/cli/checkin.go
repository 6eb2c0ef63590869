package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/reclaimhq/reclaim/internal/constants"
	"github.com/reclaimhq/reclaim/internal/errors"
)

// CheckinCmd records a daily self-report entry. Ratings can be passed as
// flags; missing ones are collected through an interactive form.
type CheckinCmd struct {
	Energy     int    `help:"Energy rating (1-10)." default:"-1"`
	Confidence int    `help:"Confidence rating (1-10)." default:"-1"`
	Focus      int    `help:"Focus rating (1-10)." default:"-1"`
	Mood       int    `help:"Mood rating (1-10)." default:"-1"`
	Note       string `help:"Optional free-text note."`
}

func (cmd *CheckinCmd) Run(ctx *Context) error {
	mgr := ctx.Journal()

	if already, err := mgr.HasCheckedInToday(time.Now()); err == nil && already {
		fmt.Println("You've already checked in today. Another entry is fine, logging it anyway.")
	}

	if cmd.Energy < 0 || cmd.Confidence < 0 || cmd.Focus < 0 || cmd.Mood < 0 {
		if err := cmd.promptForRatings(); err != nil {
			return err
		}
	}

	entry, err := mgr.CreateEntry(cmd.Energy, cmd.Confidence, cmd.Focus, cmd.Mood, cmd.Note)
	if err != nil {
		return fmt.Errorf("%s", errors.Format(err))
	}

	ctx.PerformAutomaticBackup()

	fmt.Printf("✓ Check-in recorded (average score %.2f, feeling %s)\n", entry.AverageScore(), entry.MoodLabel())
	return nil
}

func (cmd *CheckinCmd) promptForRatings() error {
	defaults := func(v int) string {
		if v >= 0 {
			return strconv.Itoa(v)
		}
		return strconv.Itoa(constants.DefaultRating)
	}

	energy := defaults(cmd.Energy)
	confidence := defaults(cmd.Confidence)
	focus := defaults(cmd.Focus)
	mood := defaults(cmd.Mood)
	note := cmd.Note

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Energy (1-10)").
				Value(&energy).
				Validate(validateRating),
			huh.NewInput().
				Title("Confidence (1-10)").
				Value(&confidence).
				Validate(validateRating),
			huh.NewInput().
				Title("Focus (1-10)").
				Value(&focus).
				Validate(validateRating),
			huh.NewInput().
				Title("Mood (1-10)").
				Value(&mood).
				Validate(validateRating),
			huh.NewText().
				Title("Note (optional)").
				Value(&note),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	// Validated above, conversion cannot fail.
	cmd.Energy, _ = strconv.Atoi(energy)
	cmd.Confidence, _ = strconv.Atoi(confidence)
	cmd.Focus, _ = strconv.Atoi(focus)
	cmd.Mood, _ = strconv.Atoi(mood)
	cmd.Note = note
	return nil
}

func validateRating(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a number between %d and %d", constants.MinRating, constants.MaxRating)
	}
	if n < constants.MinRating || n > constants.MaxRating {
		return fmt.Errorf("must be between %d and %d", constants.MinRating, constants.MaxRating)
	}
	return nil
}
