package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func useTempDB(t *testing.T) {
	t.Helper()
	old := flagDBPath
	flagDBPath = filepath.Join(t.TempDir(), "runs.db")
	t.Cleanup(func() { flagDBPath = old })
}

func TestCommandsReturnErrors(t *testing.T) {
	useTempDB(t)

	if err := runRuns(nil, nil); err == nil || !strings.Contains(err.Error(), "scene required") {
		t.Errorf("runs without a scene = %v, expected scene required", err)
	}
	if err := runRuns(nil, []string{"no_such_scene"}); err == nil || !strings.Contains(err.Error(), "unknown scene") {
		t.Errorf("runs with unknown scene = %v, expected unknown scene", err)
	}
	if err := runPlay(nil, []string{"no_such_scene"}); err == nil || !strings.Contains(err.Error(), "unknown scene") {
		t.Errorf("play with unknown scene = %v, expected unknown scene", err)
	}
}

func TestStatsOnEmptyDatabase(t *testing.T) {
	useTempDB(t)

	if err := runStats(nil, nil); err != nil {
		t.Errorf("stats on an empty database: %v", err)
	}
}
