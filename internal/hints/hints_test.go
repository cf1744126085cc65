package hints

import (
	"strings"
	"testing"
)

func TestForOutputPermission(t *testing.T) {
	t.Parallel()

	hint := ForOutputPermission("book.docx")
	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint = %q, want hint prefix", hint)
	}
	if !strings.Contains(hint, "close book.docx") {
		t.Errorf("hint = %q, should name the file", hint)
	}
}

func TestForMissingColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		available []string
		want      string
	}{
		{"no header", nil, "first row"},
		{"lists columns", []string{"ID", "Name"}, "available columns: ID, Name"},
		{
			"caps long lists",
			[]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
			"a, b, c, d, e, f, g, h, ...",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ForMissingColumns(tt.available); !strings.Contains(got, tt.want) {
				t.Errorf("ForMissingColumns() = %q, want containing %q", got, tt.want)
			}
		})
	}
}

func TestForNoSubmissions(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		if got := ForNoSubmissions("Oral Presentation", nil); !strings.Contains(got, "no data rows") {
			t.Errorf("got %q", got)
		}
	})

	t.Run("orders by frequency", func(t *testing.T) {
		t.Parallel()
		got := ForNoSubmissions("Oral Presentation", map[string]int{
			"Poster":   3,
			"Rejected": 5,
			"Accepted": 3,
		})
		want := `decisions found: "Rejected", "Accepted", "Poster"`
		if !strings.Contains(got, want) {
			t.Errorf("got %q, want containing %q", got, want)
		}
		if !strings.Contains(got, "--decision") {
			t.Errorf("got %q, should mention --decision", got)
		}
	})
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	got := ForConfigNotFound([]string{"book.yaml", "/home/u/.config/go-abstractbook/book.yaml"})
	if !strings.Contains(got, "or create /home/u/.config/go-abstractbook/book.yaml") {
		t.Errorf("got %q", got)
	}

	got = ForConfigNotFound([]string{"book.yaml"})
	if strings.Contains(got, "or create") {
		t.Errorf("got %q, should not suggest a path", got)
	}
}

func TestForThemeNotFound(t *testing.T) {
	t.Parallel()

	if got := ForThemeNotFound(nil); got != "" {
		t.Errorf("ForThemeNotFound(nil) = %q, want empty", got)
	}
	if got := ForThemeNotFound([]string{"classic", "imrc"}); !strings.Contains(got, "classic, imrc") {
		t.Errorf("got %q", got)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if format("") != "" {
		t.Error("format(\"\") should be empty")
	}
	if ForInputNotFound() == "" || ForUnsupportedInput() == "" {
		t.Error("static hints should not be empty")
	}
}
