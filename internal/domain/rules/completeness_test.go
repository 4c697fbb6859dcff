package rules

import "testing"

func intptr(v int) *int {
	return &v
}

func TestProfileComplete(t *testing.T) {
	cases := []struct {
		name     string
		age      *int
		bio      string
		redFlags []string
		photos   []string
		want     bool
	}{
		{
			name:     "all present",
			age:      intptr(25),
			bio:      "chaotic but loyal",
			redFlags: []string{"i double text"},
			photos:   []string{"photos/a.jpg"},
			want:     true,
		},
		{
			name:     "missing age",
			bio:      "chaotic but loyal",
			redFlags: []string{"i double text"},
			photos:   []string{"photos/a.jpg"},
			want:     false,
		},
		{
			name:     "blank bio",
			age:      intptr(25),
			bio:      "   ",
			redFlags: []string{"i double text"},
			photos:   []string{"photos/a.jpg"},
			want:     false,
		},
		{
			name:   "no red flags",
			age:    intptr(25),
			bio:    "chaotic but loyal",
			photos: []string{"photos/a.jpg"},
			want:   false,
		},
		{
			name:     "no photos",
			age:      intptr(25),
			bio:      "chaotic but loyal",
			redFlags: []string{"i double text"},
			want:     false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProfileComplete(tc.age, tc.bio, tc.redFlags, tc.photos)
			if got != tc.want {
				t.Fatalf("ProfileComplete = %v, want %v", got, tc.want)
			}
		})
	}
}
