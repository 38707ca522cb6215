package engine

import "testing"

func TestNextGraphemeBoundary(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  ByteOffset
		want ByteOffset
	}{
		{"ascii", "abc", 0, 1},
		{"combining mark", "e\u0301x", 0, 3},
		{"crlf", "a\r\nb", 1, 3},
		{"emoji with modifier", "\U0001F44D\U0001F3FD!", 0, 8},
		{"end of text", "abc", 3, 3},
		{"past end", "abc", 9, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithContent(tt.text))
			if got := b.NextGraphemeBoundary(tt.pos); got != tt.want {
				t.Errorf("NextGraphemeBoundary(%d) = %d, want %d", tt.pos, got, tt.want)
			}
		})
	}
}

func TestNextGraphemeBoundaryLongCluster(t *testing.T) {
	// A base letter followed by more combining marks than the initial
	// window holds.
	text := "a"
	for i := 0; i < 40; i++ {
		text += "\u0301"
	}
	text += "b"

	b := New(WithContent(text))
	want := ByteOffset(len(text) - 1)
	if got := b.NextGraphemeBoundary(0); got != want {
		t.Errorf("NextGraphemeBoundary(0) = %d, want %d", got, want)
	}
}

func TestPrevGraphemeBoundary(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  ByteOffset
		want ByteOffset
	}{
		{"ascii", "abc", 2, 1},
		{"combining mark", "xe\u0301", 4, 1},
		{"crlf", "a\r\nb", 3, 1},
		{"lf", "a\nb", 2, 1},
		{"emoji with modifier", "!\U0001F44D\U0001F3FD", 9, 1},
		{"start of text", "abc", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithContent(tt.text))
			if got := b.PrevGraphemeBoundary(tt.pos); got != tt.want {
				t.Errorf("PrevGraphemeBoundary(%d) = %d, want %d", tt.pos, got, tt.want)
			}
		})
	}
}

func TestDisplayColumn(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  ByteOffset
		want int
	}{
		{"ascii", "hello", 3, 3},
		{"leading tab", "\tab", 1, 4},
		{"tab after text", "a\tb", 2, 4},
		{"wide characters", "世界x", 6, 4},
		{"second line", "abc\n\tx", 6, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithContent(tt.text))
			if got := b.DisplayColumn(tt.pos); got != tt.want {
				t.Errorf("DisplayColumn(%d) = %d, want %d", tt.pos, got, tt.want)
			}
		})
	}

	b := New(WithContent("\tx"), WithTabWidth(8))
	if got := b.DisplayColumn(1); got != 8 {
		t.Errorf("DisplayColumn with tab width 8 = %d, want 8", got)
	}
}
