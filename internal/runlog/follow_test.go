package runlog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFollow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte("first\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chunks, err := Follow(ctx, path, 0)
	if err != nil {
		t.Fatalf("Follow() returned error: %v", err)
	}

	recv := func() string {
		select {
		case chunk, ok := <-chunks:
			if !ok {
				t.Fatal("follow channel closed early")
			}
			return string(chunk)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for chunk")
		}
		return ""
	}

	if got := recv(); got != "first\n" {
		t.Errorf("initial chunk = %q, want %q", got, "first\n")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("second\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got := recv()
	for got != "second\n" && len(got) < len("second\n") {
		got += recv()
	}
	if got != "second\n" {
		t.Errorf("appended chunk = %q, want %q", got, "second\n")
	}
}

func TestFollowStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	chunks, err := Follow(ctx, path, 0)
	if err != nil {
		t.Fatalf("Follow() returned error: %v", err)
	}

	cancel()

	select {
	case _, ok := <-chunks:
		if ok {
			// A final chunk may race the cancel; the channel must still close.
			if _, ok := <-chunks; ok {
				t.Error("follow channel still open after cancel")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("follow channel not closed after cancel")
	}
}

func TestFollowMissingFile(t *testing.T) {
	_, err := Follow(context.Background(), filepath.Join(t.TempDir(), "absent.log"), 0)
	if err == nil {
		t.Fatal("Follow() on a missing file succeeded, want error")
	}
}
