package replay

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFixtureRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.json")

	orig := testFixture()
	orig.ExpectedResults = []FixtureExpectedResult{{TurnIndex: 2, NextIndex: 1, CoveredCount: 2, RemainingCount: 5}}
	if err := SaveFixture(path, orig); err != nil {
		t.Fatalf("save fixture: %v", err)
	}

	got, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if got.UnitID != orig.UnitID {
		t.Errorf("unit id = %q, want %q", got.UnitID, orig.UnitID)
	}
	if len(got.Turns) != len(orig.Turns) {
		t.Errorf("turns = %d, want %d", len(got.Turns), len(orig.Turns))
	}
	if len(got.ExpectedResults) != 1 || got.ExpectedResults[0].TurnIndex != 2 {
		t.Errorf("expected results not preserved: %+v", got.ExpectedResults)
	}
}

func TestLoadFixtureRejectsMissingUnit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"description":"no unit","turns":[]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFixture(path); err == nil {
		t.Errorf("LoadFixture() should reject a fixture without unit_id")
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Errorf("LoadFixture() should fail on a missing file")
	}
}
