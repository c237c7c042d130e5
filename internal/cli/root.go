package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/habitgrid/internal/backup"
	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/logger"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/storage"
	"github.com/julianstephens/habitgrid/internal/storage/sqlite"
	"github.com/julianstephens/habitgrid/internal/tracker"
)

type Context struct {
	Store storage.Provider
	// Out receives command output; nil means stdout
	Out io.Writer
	// Now overrides the clock used by commands
	Now func() time.Time
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Clock returns the command clock, time.Now unless overridden.
func (c *Context) Clock() func() time.Time {
	if c.Now == nil {
		return time.Now
	}
	return c.Now
}

// StoreContext bounds a single command's store I/O.
func (c *Context) StoreContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), constants.StoreTimeout)
}

// Tracker loads the store into a new tracker. Fetch failures are reported
// but leave a usable, possibly empty, tracker.
func (c *Context) Tracker() (*tracker.Tracker, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}
	tr := tracker.New(c.Store, tracker.WithClock(c.Clock()))

	ctx, cancel := c.StoreContext()
	defer cancel()
	if err := tr.Load(ctx); err != nil {
		return tr, err
	}
	return tr, nil
}

// PerformAutomaticBackup creates a backup of SQLite stores and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FindHabit matches ref against habit IDs first, then names ignoring case.
func FindHabit(habits []models.Habit, ref string) (models.Habit, error) {
	ref = strings.TrimSpace(ref)
	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
	}

	var found []models.Habit
	for _, h := range habits {
		if strings.EqualFold(h.Name, ref) {
			found = append(found, h)
		}
	}
	switch len(found) {
	case 0:
		return models.Habit{}, fmt.Errorf("habit %q not found", ref)
	case 1:
		return found[0], nil
	default:
		return models.Habit{}, fmt.Errorf("%d habits are named %q, use the habit ID instead", len(found), ref)
	}
}
