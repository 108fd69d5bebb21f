package clipboard

import (
	"errors"
	"testing"
)

func TestMemoryWriteAll(t *testing.T) {
	m := &Memory{}
	if err := m.WriteAll("NovaKnight"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Text != "NovaKnight" || m.Writes != 1 {
		t.Errorf("got text %q writes %d", m.Text, m.Writes)
	}
}

func TestMemoryWriteAllError(t *testing.T) {
	m := &Memory{Err: errors.New("no clipboard")}
	if err := m.WriteAll("x"); err == nil {
		t.Error("expected error")
	}
	if m.Writes != 0 {
		t.Error("failed write should not be counted")
	}
}

func TestSystemImplementsWriter(t *testing.T) {
	var _ Writer = System{}
	var _ Writer = &Memory{}
}
