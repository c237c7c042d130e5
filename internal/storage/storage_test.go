package storage

import (
	"errors"
	"path/filepath"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/keyring"
	"github.com/julianstephens/habitgrid/internal/storage/postgres"
	"github.com/julianstephens/habitgrid/internal/storage/sqlite"
)

var (
	_ Provider = (*sqlite.Store)(nil)
	_ Provider = (*postgres.Store)(nil)
)

func TestNewPicksBackend(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantSQLite bool
	}{
		{"postgres URL", "postgres://habitgrid@localhost/habits", false},
		{"postgresql URL", "postgresql://habitgrid@localhost/habits", false},
		{"postgres DSN", "host=localhost dbname=habits", false},
		{"absolute path", "/tmp/habitgrid.db", true},
		{"relative path", "habitgrid.db", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.target)
			if err != nil {
				t.Fatalf("New(%q) error: %v", tt.target, err)
			}
			_, isSQLite := p.(*sqlite.Store)
			if isSQLite != tt.wantSQLite {
				t.Errorf("New(%q) returned %T", tt.target, p)
			}
		})
	}
}

func TestNewRejectsEmptyTarget(t *testing.T) {
	if _, err := New("  "); err == nil {
		t.Error("New() with blank target should fail")
	}
}

func TestNewExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := New("~/.config/habitgrid/habitgrid.db")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	want := filepath.Join(home, ".config", "habitgrid", "habitgrid.db")
	if got := p.GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestExpandPathLeavesOthersAlone(t *testing.T) {
	for _, in := range []string{"/var/lib/habits.db", "habits.db", "~user/habits.db"} {
		got, err := ExpandPath(in)
		if err != nil {
			t.Fatalf("ExpandPath(%q) error: %v", in, err)
		}
		if got != in {
			t.Errorf("ExpandPath(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Run("config path", func(t *testing.T) {
		t.Setenv(constants.EnvDBConnection, "")
		got, err := Resolve("/tmp/habits.db")
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if got != "/tmp/habits.db" {
			t.Errorf("Resolve() = %q", got)
		}
	})

	t.Run("env wins", func(t *testing.T) {
		t.Setenv(constants.EnvDBConnection, "postgres://habitgrid@db/habits")
		got, err := Resolve("/tmp/habits.db")
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if got != "postgres://habitgrid@db/habits" {
			t.Errorf("Resolve() = %q", got)
		}
	})

	t.Run("keyring", func(t *testing.T) {
		gokeyring.MockInit()
		t.Setenv(constants.EnvDBConnection, "")
		if err := keyring.SetConnectionString("postgres://habitgrid@vault/habits"); err != nil {
			t.Fatal(err)
		}
		got, err := Resolve(constants.KeyringConfigValue)
		if err != nil {
			t.Fatalf("Resolve() error: %v", err)
		}
		if got != "postgres://habitgrid@vault/habits" {
			t.Errorf("Resolve() = %q", got)
		}
	})

	t.Run("keyring empty", func(t *testing.T) {
		gokeyring.MockInit()
		t.Setenv(constants.EnvDBConnection, constants.KeyringConfigValue)
		_, err := Resolve("/tmp/habits.db")
		if !errors.Is(err, keyring.ErrNotFound) {
			t.Errorf("Resolve() error = %v, want %v", err, keyring.ErrNotFound)
		}
	})
}
