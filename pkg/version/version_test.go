package version

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"Python 3.12.1", Version{3, 12, 1}, false},
		{"Python 3.7.0", Version{3, 7, 0}, false},
		{"Python 2.7.18", Version{2, 7, 18}, false},
		{"Python 3.13.0rc1", Version{3, 13, 0}, false},
		{"3.11", Version{3, 11, 0}, false},
		{"v3", Version{3, 0, 0}, false},
		{"no digits here", Version{}, true},
		{"", Version{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Extract(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Extract(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Extract(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{Version{3, 7, 0}, Version{3, 7, 0}, 0},
		{Version{2, 7, 18}, Version{3, 0, 0}, -1},
		{Version{3, 6, 9}, Version{3, 7, 0}, -1},
		{Version{3, 7, 1}, Version{3, 7, 0}, 1},
		{Version{3, 12, 1}, Version{3, 7, 0}, 1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLessThan(t *testing.T) {
	min := Version{Major: 3, Minor: 7}

	if !(Version{Major: 2, Minor: 7, Patch: 18}).LessThan(min) {
		t.Error("2.7.18 should be less than 3.7.0")
	}
	if (Version{Major: 3, Minor: 7}).LessThan(min) {
		t.Error("3.7.0 should not be less than itself")
	}
	if (Version{Major: 3, Minor: 12, Patch: 1}).LessThan(min) {
		t.Error("3.12.1 should not be less than 3.7.0")
	}
}

func TestString(t *testing.T) {
	v := Version{Major: 3, Minor: 12, Patch: 1}
	if got := v.String(); got != "3.12.1" {
		t.Errorf("String() = %q, want %q", got, "3.12.1")
	}
}
