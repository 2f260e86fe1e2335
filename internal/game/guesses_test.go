package game

import (
	"errors"
	"testing"
)

func TestAssignIdempotent(t *testing.T) {
	once := NewGuessTable()
	twice := NewGuessTable()
	if err := once.Assign('Z', 'A'); err != nil {
		t.Fatal(err)
	}
	twice.Assign('Z', 'A')
	twice.Assign('Z', 'A')
	if !once.Equal(twice) {
		t.Errorf("tables differ: %v vs %v", once, twice)
	}
}

func TestAssignOverwrites(t *testing.T) {
	g := NewGuessTable()
	g.Assign('Z', 'A')
	g.Assign('Z', 'b')
	if r, ok := g.Lookup('Z'); !ok || r != 'B' {
		t.Errorf("Lookup(Z) = %q, %v; want 'B'", r, ok)
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

func TestAssignRejectsNonLetters(t *testing.T) {
	g := NewGuessTable()
	if err := g.Assign(',', 'A'); !errors.Is(err, ErrNotLetter) {
		t.Errorf("Assign(',') error = %v", err)
	}
	if err := g.Assign('Z', '1'); !errors.Is(err, ErrNotLetter) {
		t.Errorf("Assign(Z, '1') error = %v", err)
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}
}

func TestRemove(t *testing.T) {
	g := NewGuessTable()
	g.Assign('Z', 'A')
	before := g.String()

	if g.Remove('Q') {
		t.Error("Remove(Q) reported a removal")
	}
	if g.String() != before {
		t.Errorf("table changed: %q -> %q", before, g.String())
	}

	if !g.Remove('Z') {
		t.Error("Remove(Z) reported nothing removed")
	}
	if g.Len() != 0 || g.Has('Z') {
		t.Errorf("table not empty: %v", g)
	}
}

func TestLettersSorted(t *testing.T) {
	g := NewGuessTable()
	g.Assign('Z', 'A')
	g.Assign('B', 'C')
	g.Assign('M', 'N')
	if got := string(g.Letters()); got != "BMZ" {
		t.Errorf("Letters() = %q", got)
	}
	if got := g.String(); got != "B=C M=N Z=A" {
		t.Errorf("String() = %q", got)
	}
}
