package edit

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/dshills/forge/internal/engine/rope"
	"github.com/dshills/forge/internal/engine/selection"
)

func TestChangeKind(t *testing.T) {
	tests := []struct {
		name   string
		change Change
		want   Kind
	}{
		{"insert", Insert(3, "x"), KindInsert},
		{"delete", Delete(1, 4), KindDelete},
		{"replace", Replace(1, 4, "y"), KindReplace},
		{"noop", Insert(2, ""), KindNoop},
		{"delete text", DeleteText(0, "abc"), KindDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.change.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChangeLenDelta(t *testing.T) {
	tests := []struct {
		change Change
		want   int64
	}{
		{Insert(0, "hello"), 5},
		{Delete(2, 7), -5},
		{Replace(0, 5, "hi"), -3},
		{Replace(0, 2, "hello"), 3},
	}

	for _, tt := range tests {
		if got := tt.change.LenDelta(); got != tt.want {
			t.Errorf("%v: LenDelta() = %d, want %d", tt.change, got, tt.want)
		}
	}
}

func TestChangeApplyRemovesBeforeInserting(t *testing.T) {
	r := rope.FromString("hello world")
	got := Replace(6, 11, "Forge").Apply(r)
	if got.String() != "hello Forge" {
		t.Errorf("Apply = %q, want %q", got.String(), "hello Forge")
	}
}

func TestInsertHasPreImage(t *testing.T) {
	if !Insert(4, "x").HasPreImage() {
		t.Error("insert should never need a pre-image")
	}
	if Delete(0, 2).HasPreImage() {
		t.Error("delete should need capturing")
	}
	if !DeleteText(0, "ab").HasPreImage() {
		t.Error("DeleteText carries its pre-image")
	}
}

func TestCaptureRecordsPreImage(t *testing.T) {
	r := rope.FromString("hello world")
	cs, err := ChangeSet{Replace(6, 11, "Forge")}.Capture(r)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if !cs[0].HasPreImage() || cs[0].Deleted != "world" {
		t.Errorf("pre-image = %q, want %q", cs[0].Deleted, "world")
	}
}

func TestCaptureSequentialOffsets(t *testing.T) {
	// The second change's offsets refer to the text after the first.
	r := rope.FromString("abcdef")
	cs, err := ChangeSet{Delete(0, 2), Delete(0, 2)}.Capture(r)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if cs[0].Deleted != "ab" || cs[1].Deleted != "cd" {
		t.Errorf("pre-images = %q, %q; want ab, cd", cs[0].Deleted, cs[1].Deleted)
	}
	if got := cs.Apply(r).String(); got != "ef" {
		t.Errorf("Apply = %q, want ef", got)
	}
}

func TestCaptureErrors(t *testing.T) {
	r := rope.FromString("a日b")

	tests := []struct {
		name    string
		changes ChangeSet
		want    error
		index   int
	}{
		{"past end", ChangeSet{Delete(0, 9)}, ErrChangeOutOfRange, 0},
		{"reversed", ChangeSet{Delete(4, 1)}, ErrChangeOutOfRange, 0},
		{"negative", ChangeSet{Insert(-1, "x")}, ErrChangeOutOfRange, 0},
		{"inside rune", ChangeSet{Insert(2, "x")}, ErrNotCharBoundary, 0},
		{"second change fails", ChangeSet{Insert(0, "x"), Delete(0, 10)}, ErrChangeOutOfRange, 1},
		{"invalid utf8", ChangeSet{Insert(0, "\xff")}, ErrInvalidUTF8, 0},
		{"wrong pre-image", ChangeSet{DeleteText(0, "b")}, ErrPreImageMismatch, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.changes.Capture(r)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Capture error = %v, want %v", err, tt.want)
			}
			var ce *ChangeError
			if !errors.As(err, &ce) {
				t.Fatalf("error %T is not a *ChangeError", err)
			}
			if ce.Index != tt.index {
				t.Errorf("Index = %d, want %d", ce.Index, tt.index)
			}
		})
	}
}

func TestInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		changes ChangeSet
		after   string
	}{
		{"insert", "original", ChangeSet{Insert(8, " text")}, "original text"},
		{"delete", "hello world", ChangeSet{Delete(5, 11)}, "hello"},
		{"replace", "hello world", ChangeSet{Replace(6, 11, "Forge")}, "hello Forge"},
		{"replace unicode", "日本語", ChangeSet{Replace(3, 6, "z")}, "日z語"},
		{"multi change", "one two three", ChangeSet{Replace(0, 3, "1"), Delete(1, 5), Insert(1, " 2 ")}, "1 2  three"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rope.FromString(tt.initial)
			tx, err := NewTransaction(tt.changes...).Capture(r)
			if err != nil {
				t.Fatalf("Capture: %v", err)
			}
			after, _ := tx.Apply(r)
			if after.String() != tt.after {
				t.Fatalf("forward = %q, want %q", after.String(), tt.after)
			}
			back, _ := tx.Invert(r).Apply(after)
			if back.String() != tt.initial {
				t.Errorf("inverse = %q, want %q", back.String(), tt.initial)
			}
		})
	}
}

func TestInvertReversesOrder(t *testing.T) {
	r := rope.FromString("abc")
	tx, err := NewTransaction(Insert(0, "x"), Insert(4, "y")).Capture(r)
	if err != nil {
		t.Fatal(err)
	}
	inv := tx.Invert(r)
	if inv.Changes[0].Start != 4 || inv.Changes[1].Start != 0 {
		t.Errorf("inverse order = %v, want the last change first", inv.Changes)
	}
}

func TestInvertUsesPreImageNotCurrentText(t *testing.T) {
	// Inverting with the post-apply rope must still restore the original
	// bytes, because captured changes never read the rope.
	r := rope.FromString("hello world")
	tx, err := NewTransaction(Replace(6, 11, "Forge")).Capture(r)
	if err != nil {
		t.Fatal(err)
	}
	after, _ := tx.Apply(r)
	back, _ := tx.Invert(after).Apply(after)
	if back.String() != "hello world" {
		t.Errorf("inverse = %q, want %q", back.String(), "hello world")
	}
}

func TestInvertWithoutCaptureReadsPreRope(t *testing.T) {
	r := rope.FromString("abcdef")
	cs := ChangeSet{Delete(0, 2), Replace(0, 2, "Z")}
	after := cs.Apply(r)
	back := cs.Invert(r).Apply(after)
	if back.String() != "abcdef" {
		t.Errorf("inverse = %q, want abcdef", back.String())
	}
}

func TestReplaceRoundTripProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []string{"a", "b", "\n", "é", "日", "🙂"}
	randText := func(n int) string {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteString(alphabet[rng.Intn(len(alphabet))])
		}
		return sb.String()
	}
	boundary := func(s string) rope.ByteOffset {
		p := rng.Intn(len(s) + 1)
		for p > 0 && p < len(s) && (s[p]&0xC0) == 0x80 {
			p--
		}
		return rope.ByteOffset(p)
	}

	for i := 0; i < 500; i++ {
		text := randText(rng.Intn(30))
		a, b := boundary(text), boundary(text)
		if a > b {
			a, b = b, a
		}
		r := rope.FromString(text)
		tx, err := NewTransaction(Replace(a, b, randText(rng.Intn(5)))).Capture(r)
		if err != nil {
			t.Fatalf("Capture(%q, %d, %d): %v", text, a, b, err)
		}
		after, _ := tx.Apply(r)
		back, _ := tx.Invert(after).Apply(after)
		if back.String() != text {
			t.Fatalf("round trip of %q [%d,%d) gave %q", text, a, b, back.String())
		}
	}
}

func TestMapPosition(t *testing.T) {
	tests := []struct {
		name   string
		change Change
		pos    rope.ByteOffset
		want   rope.ByteOffset
	}{
		{"before insert", Insert(5, "abc"), 2, 2},
		{"at insert", Insert(5, "abc"), 5, 8},
		{"after insert", Insert(5, "abc"), 7, 10},
		{"after delete", Delete(2, 4), 6, 4},
		{"inside delete", Delete(2, 6), 4, 2},
		{"inside replace", Replace(2, 6, "xy"), 3, 4},
		{"at delete start", Delete(2, 6), 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.change.MapPosition(tt.pos); got != tt.want {
				t.Errorf("MapPosition(%d) = %d, want %d", tt.pos, got, tt.want)
			}
		})
	}
}

func TestTransactionSelection(t *testing.T) {
	r := rope.FromString("abc")
	tx := NewTransaction(Insert(3, "d"))

	_, sel := tx.Apply(r)
	if sel != nil {
		t.Error("transaction without selection should return nil")
	}

	tx = tx.WithSelection(selection.At(4))
	_, sel = tx.Apply(r)
	if sel == nil || sel.Primary() != selection.Point(4) {
		t.Errorf("carried selection = %v", sel)
	}

	mapped := tx.MapSelection(selection.Single(1, 3))
	if mapped.Primary() != selection.NewRange(1, 4) {
		t.Errorf("MapSelection = %v, want 1..4", mapped)
	}
}

func TestTransactionDescription(t *testing.T) {
	tests := []struct {
		tx   Transaction
		want string
	}{
		{NewTransaction(), "no changes"},
		{NewTransaction(Insert(0, "x")), "insert"},
		{NewTransaction(Insert(0, "x"), Delete(0, 1)), "2 changes"},
	}
	for _, tt := range tests {
		if got := tt.tx.Description(); got != tt.want {
			t.Errorf("Description() = %q, want %q", got, tt.want)
		}
	}
}

func TestChangeString(t *testing.T) {
	got := Insert(3, strings.Repeat("日", 10)).String()
	if !strings.HasPrefix(got, "insert ") || !strings.Contains(got, "...") {
		t.Errorf("String() = %q", got)
	}
}
