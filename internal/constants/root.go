package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "habitgrid"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitgrid/habitgrid.db"
	Version            = "v0.1.0"

	// KeyringConfigValue selects the connection string stored in the OS keyring
	KeyringConfigValue = "keyring"

	// Environment variables
	EnvConfig       = "HABITGRID_CONFIG"
	EnvDBConnection = "HABITGRID_DB_CONNECTION"

	// DateFormat is the storage format for calendar days (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Calendar window sizes
	InitialWeeksCount  = 12
	InitialWeeksBefore = 4
	ViewAllWeeksCount  = 4
	LoadMoreWeeksCount = 8

	// ScrollThreshold is the distance from the bottom, in pixels, that triggers
	// loading more weeks.
	ScrollThreshold = 200
	// ScrollThresholdLines is the same trigger measured in terminal lines.
	ScrollThresholdLines = 6

	// Selection and grouping
	ViewAllID       = "view-all"
	DefaultCategory = "Other"
	WorkCategory    = "work"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitgrid-"
	BackupFileSuffix = ".db"

	// StoreTimeout bounds a single storage call issued from the TUI
	StoreTimeout = 10 * time.Second

	// Session States
	StateGrid SessionState = iota
	StatePicker
	StateAddHabit
)

// PreferredCategories lists category labels that sort ahead of all others, in order.
// Matching is case-insensitive.
var PreferredCategories = []string{"morning", "work", "other", "negative"}
