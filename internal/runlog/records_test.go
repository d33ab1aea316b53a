package runlog

import (
	"testing"
	"time"

	"github.com/rtlaunch-io/rtlaunch/internal/models"
)

func testRun(id, startedAt string) *models.Run {
	return &models.Run{
		RunID: id,
		Invocation: models.Invocation{
			Fork: "emc", Branch: "develop", Site: "hera", Compiler: "intel",
		},
		PID:       12345,
		WorkDir:   "/scratch1/autoregtest",
		LogPath:   "/scratch1/autoregtest/autoregtest_emc_develop_hera_intel_20191122T143005.log",
		StartedAt: startedAt,
	}
}

func TestSaveLoadRun(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	run := testRun("aaaa1111-0000-0000-0000-000000000000", time.Now().UTC().Format(time.RFC3339))
	if err := SaveRun(run); err != nil {
		t.Fatalf("SaveRun() returned error: %v", err)
	}

	got, err := LoadRun(run.RunID)
	if err != nil {
		t.Fatalf("LoadRun() returned error: %v", err)
	}
	if *got != *run {
		t.Errorf("LoadRun() = %+v, want %+v", got, run)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	old := testRun("aaaa1111-0000-0000-0000-000000000000", "2019-11-21T10:00:00Z")
	recent := testRun("bbbb2222-0000-0000-0000-000000000000", "2019-11-22T10:00:00Z")
	for _, run := range []*models.Run{old, recent} {
		if err := SaveRun(run); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := ListRuns()
	if err != nil {
		t.Fatalf("ListRuns() returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns() returned %d runs, want 2", len(runs))
	}
	if runs[0].RunID != recent.RunID {
		t.Errorf("first run is %s, want the most recent %s", runs[0].RunID, recent.RunID)
	}
}

func TestListRunsEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	runs, err := ListRuns()
	if err != nil {
		t.Fatalf("ListRuns() returned error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("ListRuns() returned %d runs, want 0", len(runs))
	}
}

func TestFindRun(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	a := testRun("aaaa1111-0000-0000-0000-000000000000", "2019-11-21T10:00:00Z")
	b := testRun("bbbb2222-0000-0000-0000-000000000000", "2019-11-22T10:00:00Z")
	for _, run := range []*models.Run{a, b} {
		if err := SaveRun(run); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{name: "exact ID", id: a.RunID, want: a.RunID},
		{name: "unique prefix", id: "bbbb", want: b.RunID},
		{name: "no match", id: "cccc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRun(tt.id)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FindRun(%q) = %v, want error", tt.id, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindRun(%q) returned error: %v", tt.id, err)
			}
			if got.RunID != tt.want {
				t.Errorf("FindRun(%q) = %s, want %s", tt.id, got.RunID, tt.want)
			}
		})
	}
}
