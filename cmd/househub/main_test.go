package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the CLI against dbPath and returns its output.
func run(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--db", dbPath, "--namespace", "cli-test"}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("househub %s failed: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestCLI(t *testing.T) {
	db := filepath.Join(t.TempDir(), "house.db")

	if out := run(t, db, "roommates", "list"); !strings.Contains(out, "No roommates yet.") {
		t.Errorf("unexpected empty listing %q", out)
	}

	run(t, db, "roommates", "add", "Alice")
	run(t, db, "roommates", "add", "Bob")
	run(t, db, "rooms", "add", "Kitchen")
	run(t, db, "rooms", "add", "Living", "Room", "--chores=false", "--reservable")

	out := run(t, db, "roommates", "list")
	if !strings.Contains(out, "1. Alice") || !strings.Contains(out, "2. Bob") {
		t.Errorf("unexpected roommates %q", out)
	}

	out = run(t, db, "rooms", "list")
	if !strings.Contains(out, "[chores]") || !strings.Contains(out, "Living Room") || !strings.Contains(out, "[reservable]") {
		t.Errorf("unexpected rooms %q", out)
	}

	out = run(t, db, "board")
	if !strings.Contains(out, "Week 1  (0/1 done)") || !strings.Contains(out, "[ ] Kitchen") {
		t.Errorf("unexpected board %q", out)
	}

	out = run(t, db, "advance-week")
	if !strings.Contains(out, "Now on week 2") || !strings.Contains(out, "Bob") {
		t.Errorf("unexpected advance output %q", out)
	}

	out = run(t, db, "status")
	for _, want := range []string{"Namespace:  cli-test", "Week:       2", "Roommates:  2", "Rooms:      2 (1 in rotation, 1 reservable)"} {
		if !strings.Contains(out, want) {
			t.Errorf("status missing %q in %q", want, out)
		}
	}
}

func TestCLI_Errors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "house.db")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--db", db, "roommates", "add", "   "})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for blank roommate name")
	}
}
