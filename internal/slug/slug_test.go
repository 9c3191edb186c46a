package slug

import (
	"testing"
	"time"
)

// TestGenerate exercises the slug generator with typical product and
// category names, punctuation, whitespace and edge cases.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Normal names ---
		{
			name:  "simple two words",
			input: "Premium Salt",
			want:  "premium-salt",
		},
		{
			name:  "product with punctuation",
			input: "Al Razak Pink Salt!",
			want:  "al-razak-pink-salt",
		},
		{
			name:  "single word",
			input: "Rice",
			want:  "rice",
		},
		{
			name:  "ampersand collapsed",
			input: "Gold & Jewelry",
			want:  "gold-jewelry",
		},

		// --- Special characters ---
		{
			name:  "slashes become hyphens",
			input: "Frontend/Backend",
			want:  "frontend-backend",
		},
		{
			name:  "dots become hyphens",
			input: "Version 2.0.1",
			want:  "version-2-0-1",
		},
		{
			name:  "apostrophe splits word",
			input: "Chef's Choice",
			want:  "chef-s-choice",
		},
		{
			name:  "accented letters are separators",
			input: "Café Noir",
			want:  "caf-noir",
		},

		// --- Whitespace handling ---
		{
			name:  "trailing space",
			input: "Rice ",
			want:  "rice",
		},
		{
			name:  "leading and trailing spaces",
			input: "  hello world  ",
			want:  "hello-world",
		},
		{
			name:  "tabs and newlines collapse",
			input: "hello\t\nworld",
			want:  "hello-world",
		},

		// --- Hyphen handling ---
		{
			name:  "leading and trailing hyphens",
			input: "---pink-salt---",
			want:  "pink-salt",
		},
		{
			name:  "mixed run of separators",
			input: "a - - b",
			want:  "a-b",
		},

		// --- Edge cases ---
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only special characters",
			input: "!@#$%^&*()",
			want:  "",
		},
		{
			name:  "digits kept",
			input: "25kg Bags 50",
			want:  "25kg-bags-50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Deterministic verifies that deriving twice from the same
// name yields the same id, and that a slug is a fixed point.
func TestGenerate_Deterministic(t *testing.T) {
	names := []string{
		"Al Razak Basmati Rice",
		"Gold Ornaments",
		"Precious Stones!!",
		"",
	}

	for _, n := range names {
		t.Run(n, func(t *testing.T) {
			first := Generate(n)
			if second := Generate(n); second != first {
				t.Errorf("Generate(%q) not deterministic: %q then %q", n, first, second)
			}
			if again := Generate(first); again != first {
				t.Errorf("Generate(%q) = %q, want fixed point %q", first, again, first)
			}
		})
	}
}

func TestWithSuffix(t *testing.T) {
	ts := time.UnixMilli(1718000123456)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"title", "Summer Harvest", "summer-harvest-123456"},
		{"empty title falls back", "", "hero-123456"},
		{"symbols only falls back", "***", "hero-123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithSuffix(tt.input, ts)
			if got != tt.want {
				t.Errorf("WithSuffix(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWithSuffix_ShortTimestamp(t *testing.T) {
	got := WithSuffix("Banner", time.UnixMilli(42))
	if got != "banner-42" {
		t.Errorf("WithSuffix short timestamp = %q, want %q", got, "banner-42")
	}
}
