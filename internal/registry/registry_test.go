package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

type nopSink struct{ id string }

func (nopSink) LogSnapshot(t2048.Label, t2048.Board) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-nop", func(env Env) (t2048.SnapshotSink, error) {
		return nopSink{id: env.SessionID}, nil
	})

	if !Exists("test-nop") {
		t.Fatal("test-nop should exist after Register")
	}

	sink, err := Create("test-nop", Env{SessionID: "abc"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if got := sink.(nopSink).id; got != "abc" {
		t.Errorf("factory received session %q, want abc", got)
	}

	found := false
	for _, name := range List() {
		if name == "test-nop" {
			found = true
		}
	}
	if !found {
		t.Errorf("List() = %v, missing test-nop", List())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-sink", Env{}); err == nil {
		t.Error("Create() of unknown sink should fail")
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("test-failing", func(Env) (t2048.SnapshotSink, error) {
		return nil, boom
	})

	_, err := Create("test-failing", Env{})
	if !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, want wrapped boom", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func(Env) (t2048.SnapshotSink, error) { return nopSink{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("second Register with the same name should panic")
		}
	}()
	Register("test-dup", func(Env) (t2048.SnapshotSink, error) { return nopSink{}, nil })
}
