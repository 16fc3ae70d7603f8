package shared

import "testing"

func TestFormatDurationMS(t *testing.T) {
	tc := []struct {
		name string
		ms   int
		want string
	}{
		{
			name: "zero",
			ms:   0,
			want: "0:00",
		},
		{
			name: "sub-minute clip",
			ms:   42500,
			want: "0:42",
		},
		{
			name: "minute boundary",
			ms:   60000,
			want: "1:00",
		},
		{
			name: "typical clip length",
			ms:   95250,
			want: "1:35",
		},
		{
			name: "negative clamps to zero",
			ms:   -1000,
			want: "0:00",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDurationMS(tt.ms)
			if got != tt.want {
				t.Errorf("FormatDurationMS(%d) = %v, want %v", tt.ms, got, tt.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a == b {
		t.Error("expected unique IDs")
	}
}
