package storage

import (
	"testing"
)

func TestPreferencesRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	// Nothing saved yet: defaults come back.
	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if prefs.PlayerColor != ColorWhite || !prefs.AIEnabled || prefs.AIDelayMs != 250 {
		t.Errorf("unexpected defaults: %+v", prefs)
	}

	prefs.PlayerColor = ColorBlack
	prefs.AIDelayMs = 500
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	loaded, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if loaded.PlayerColor != ColorBlack || loaded.AIDelayMs != 500 {
		t.Errorf("saved preferences not restored: %+v", loaded)
	}
}

func TestRecordGame(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	results := []Result{
		{Won: true},
		{Won: true},
		{Draw: true},
		{},
	}
	for _, r := range results {
		if err := s.RecordGame(r); err != nil {
			t.Fatalf("RecordGame: %v", err)
		}
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 4 || stats.Wins != 2 || stats.Draws != 1 || stats.Losses != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.LongestStreak != 2 || stats.CurrentStreak != 0 {
		t.Errorf("unexpected streaks: %+v", stats)
	}
	if stats.WinRate() != 50 {
		t.Errorf("expected 50%% win rate, got %.2f%%", stats.WinRate())
	}
}

func TestDataDir(t *testing.T) {
	dataDir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("DataDir returned empty path")
	}
	t.Logf("Data directory: %s", dataDir)
}
