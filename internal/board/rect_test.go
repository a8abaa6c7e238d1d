package board

import "testing"

func TestParseRect(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Rect
		wantErr bool
	}{
		{"basic", "80,240,360,360", Rect{80, 240, 360, 360}, false},
		{"spaces", " 10, 20, 30, 40 ", Rect{10, 20, 30, 40}, false},
		{"negative origin", "-5,-5,100,100", Rect{-5, -5, 100, 100}, false},
		{"too few fields", "10,20,30", Rect{}, true},
		{"too many fields", "10,20,30,40,50", Rect{}, true},
		{"non-numeric", "10,20,abc,40", Rect{}, true},
		{"empty", "", Rect{}, true},
		{"float", "10.5,20,30,40", Rect{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRect(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRect(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseRect(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClampTo(t *testing.T) {
	tests := []struct {
		name          string
		in            Rect
		width, height int
		want          Rect
	}{
		{"inside", Rect{10, 10, 50, 50}, 100, 100, Rect{10, 10, 50, 50}},
		{"overflow corner", Rect{90, 90, 50, 50}, 100, 100, Rect{90, 90, 10, 10}},
		{"negative origin", Rect{-10, -10, 50, 50}, 100, 100, Rect{0, 0, 50, 50}},
		{"origin past edge", Rect{200, 200, 10, 10}, 100, 100, Rect{99, 99, 1, 1}},
		{"zero size", Rect{10, 10, 0, 0}, 100, 100, Rect{10, 10, 1, 1}},
		{"full image", Rect{0, 0, 100, 100}, 100, 100, Rect{0, 0, 100, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ClampTo(tt.width, tt.height)
			if got != tt.want {
				t.Errorf("ClampTo(%d,%d) on %v = %v, want %v", tt.width, tt.height, tt.in, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	r := Rect{20, 20, 150, 150}.Pad(3, 200, 200)
	want := Rect{17, 17, 156, 156}
	if r != want {
		t.Errorf("Pad(3) = %v, want %v", r, want)
	}

	// Padding clamps at the image edges.
	r = Rect{0, 0, 200, 200}.Pad(5, 200, 200)
	want = Rect{0, 0, 200, 200}
	if r != want {
		t.Errorf("Pad at edge = %v, want %v", r, want)
	}
}

func TestRectGeometry(t *testing.T) {
	r := Rect{10, 20, 40, 50}
	if got := r.Area(); got != 2000 {
		t.Errorf("Area() = %d, want 2000", got)
	}
	if got := r.Aspect(); got != 0.8 {
		t.Errorf("Aspect() = %v, want 0.8", got)
	}
	if c := r.Center(); c.X != 30 || c.Y != 45 {
		t.Errorf("Center() = %v, want (30,45)", c)
	}
	if b := r.Bounds(); b.Dx() != 40 || b.Dy() != 50 {
		t.Errorf("Bounds() = %v, want 40x50", b)
	}
}
