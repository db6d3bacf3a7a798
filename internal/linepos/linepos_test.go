package linepos

import (
	"bytes"
	"io"
	"testing"
)

func readAll(t *testing.T, tr *Tracker) {
	t.Helper()
	for {
		_, err := tr.ReadByte()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("unexpected read error: %v", err)
		}
	}
}

func TestTrackerPositions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Pos
	}{
		{"empty", "", Pos{Line: 1, Col: 0}},
		{"single line", "abc", Pos{Line: 1, Col: 3}},
		{"two lines", "ab\ncd", Pos{Line: 2, Col: 2}},
		{"trailing newline", "ab\n", Pos{Line: 2, Col: 0}},
		{"multibyte counts once", "é!", Pos{Line: 1, Col: 2}},
		{"four byte codepoint", "\U0001D11E", Pos{Line: 1, Col: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(bytes.NewReader([]byte(tt.input)))
			readAll(t, tr)
			if got := tr.Pos(); got != tt.want {
				t.Errorf("after reading %q: got %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrackerMidStream(t *testing.T) {
	tr := NewTracker(bytes.NewReader([]byte("a\nbc")))
	for i := 0; i < 3; i++ {
		if _, err := tr.ReadByte(); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
	}
	if got := (Pos{Line: 2, Col: 1}); tr.Pos() != got {
		t.Errorf("got %+v, want %+v", tr.Pos(), got)
	}
}
