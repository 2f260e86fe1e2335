package game

import "testing"

func TestCharAt(t *testing.T) {
	b := NewBoard("ZY\nX\n\nWVU")

	tests := []struct {
		name   string
		row    int
		col    int
		want   rune
		wantOK bool
	}{
		{"first cell", 0, 0, 'Z', true},
		{"end of first row", 0, 1, 'Y', true},
		{"line break position", 0, 2, 0, false},
		{"past short row", 1, 3, 0, false},
		{"empty row", 2, 0, 0, false},
		{"last row", 3, 2, 'U', true},
		{"past end of text", 3, 3, 0, false},
		{"row past end", 9, 0, 0, false},
		{"negative", -1, -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.CharAt(tt.row, tt.col)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("CharAt(%d, %d) = %q, %v; want %q, %v", tt.row, tt.col, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsBreakAt(t *testing.T) {
	b := NewBoard("ZY\nXW")
	if b.LineBreaks() != 1 {
		t.Fatalf("LineBreaks() = %d, want 1", b.LineBreaks())
	}
	if !b.IsBreakAt(0, 2) {
		t.Error("expected break at (0,2)")
	}
	if b.IsBreakAt(0, 1) || b.IsBreakAt(1, 2) {
		t.Error("unexpected break")
	}
}

func TestMultibyteColumns(t *testing.T) {
	b := NewBoard("ÉA\nB")
	if r, ok := b.CharAt(0, 1); !ok || r != 'A' {
		t.Errorf("CharAt(0,1) = %q, %v; want 'A'", r, ok)
	}
	if !b.IsBreakAt(0, 2) {
		t.Error("expected break after two runes on row 0")
	}
}
