package chat2pdf

import "testing"

// ---------------------------------------------------------------------------
// TestPaginator - Break decisions
// ---------------------------------------------------------------------------

func TestPaginator_NeedsHeaderBreak(t *testing.T) {
	t.Parallel()

	p := NewPaginator(DefaultLayout())

	tests := []struct {
		y    float64
		want bool
	}{
		{y: 742, want: false},
		{y: 90, want: false}, // exactly the 40 point reserve
		{y: 89.99, want: true},
		{y: 50, want: true},
		{y: -20, want: true}, // text overflowed past the margin
	}
	for _, tt := range tests {
		if got := p.NeedsHeaderBreak(tt.y); got != tt.want {
			t.Errorf("NeedsHeaderBreak(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestPaginator_Fits(t *testing.T) {
	t.Parallel()

	p := NewPaginator(DefaultLayout())

	tests := []struct {
		name   string
		y      float64
		height float64
		want   bool
	}{
		{name: "plenty of room", y: 727, height: 300, want: true},
		{name: "exact fit", y: 350, height: 300, want: true},
		{name: "one point short", y: 349, height: 300, want: false},
		{name: "zero height", y: 50, height: 0, want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.Fits(tt.y, tt.height); got != tt.want {
				t.Errorf("Fits(%v, %v) = %v, want %v", tt.y, tt.height, got, tt.want)
			}
		})
	}

	if got := p.Available(742); got != 692 {
		t.Errorf("Available(742) = %v, want 692", got)
	}
}

func TestPaginator_Next(t *testing.T) {
	t.Parallel()

	l := DefaultLayout()
	l.MaxPagesPerDocument = 3
	p := NewPaginator(l)

	tests := []struct {
		page int
		want Transition
	}{
		{page: 1, want: NewPage},
		{page: 2, want: NewPage},
		{page: 3, want: NewDocument},
	}
	for _, tt := range tests {
		if got := p.Next(tt.page); got != tt.want {
			t.Errorf("Next(%d) = %v, want %v", tt.page, got, tt.want)
		}
	}

	single := DefaultLayout()
	single.MaxPagesPerDocument = 1
	if got := NewPaginator(single).Next(1); got != NewDocument {
		t.Errorf("Next(1) with one page per document = %v, want %v", got, NewDocument)
	}
}

func TestTransition_String(t *testing.T) {
	t.Parallel()

	if got := NewPage.String(); got != "new-page" {
		t.Errorf("NewPage.String() = %q", got)
	}
	if got := NewDocument.String(); got != "new-document" {
		t.Errorf("NewDocument.String() = %q", got)
	}
}
