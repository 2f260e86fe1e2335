package game

import "testing"

func TestCursorMoves(t *testing.T) {
	b := NewBoard("ZY\nXW\nVU")

	tests := []struct {
		name string
		from Cursor
		move func(Cursor) Cursor
		want Cursor
	}{
		{"up from top stays", Cursor{0, 1}, Cursor.Up, Cursor{0, 1}},
		{"up", Cursor{2, 1}, Cursor.Up, Cursor{1, 1}},
		{"down", Cursor{0, 1}, func(c Cursor) Cursor { return c.Down(b) }, Cursor{1, 1}},
		{"down from bottom stays", Cursor{2, 0}, func(c Cursor) Cursor { return c.Down(b) }, Cursor{2, 0}},
		{"left from column 0 stays", Cursor{1, 0}, Cursor.Left, Cursor{1, 0}},
		{"left", Cursor{1, 5}, Cursor.Left, Cursor{1, 4}},
		{"right ignores text", Cursor{0, 1}, Cursor.Right, Cursor{0, 2}},
		{"advance inside row", Cursor{0, 0}, func(c Cursor) Cursor { return c.Advance(b) }, Cursor{0, 1}},
		{"advance wraps before break", Cursor{0, 1}, func(c Cursor) Cursor { return c.Advance(b) }, Cursor{1, 0}},
		{"advance on last row runs off", Cursor{2, 1}, func(c Cursor) Cursor { return c.Advance(b) }, Cursor{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move(tt.from); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRowClamp(t *testing.T) {
	b := NewBoard("A\nB\nC")
	c := Cursor{}
	for i := 0; i < 10; i++ {
		c = c.Down(b)
		if c.Row < 0 || c.Row > b.LineBreaks() {
			t.Fatalf("row %d out of range", c.Row)
		}
	}
	if c.Row != 2 {
		t.Errorf("row = %d, want 2", c.Row)
	}
	for i := 0; i < 10; i++ {
		c = c.Up()
	}
	if c.Row != 0 {
		t.Errorf("row = %d, want 0", c.Row)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"", Enhanced, false},
		{"enhanced", Enhanced, false},
		{"LEGACY", Legacy, false},
		{"fancy", Enhanced, true},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("ParseVariant(%q) = %v, %v", tt.in, got, err)
		}
	}
}
