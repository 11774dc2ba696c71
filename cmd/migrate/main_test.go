package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pokecatch/pokecatch/internal/migrations"
)

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"sideways"}, {"up", "extra"}} {
		err := run(args, &bytes.Buffer{})
		if !errors.Is(err, errUsage) {
			t.Errorf("run(%v) = %v, want usage error", args, err)
		}
	}
}

func TestRun_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if err := run([]string{"status"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	printStatus(&buf, []migrations.Status{
		{Version: 1, Source: "00001_users.sql", Applied: true},
		{Version: 2, Source: "00002_pokemon.sql", Applied: false},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %q", buf.String())
	}
	if !strings.Contains(lines[1], "applied") || !strings.Contains(lines[1], "00001_users.sql") {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "pending") {
		t.Errorf("unexpected second row: %q", lines[2])
	}
}
