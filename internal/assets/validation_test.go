package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple name", "imrc", nil},
		{"hyphen", "navy-print", nil},
		{"underscore", "navy_print", nil},
		{"digits and case", "Theme2025", nil},
		{"at max length", strings.Repeat("a", maxAssetNameLength), nil},
		{"empty", "", ErrInvalidAssetName},
		{"too long", strings.Repeat("a", maxAssetNameLength+1), ErrInvalidAssetName},
		{"forward slash", "path/to/theme", ErrInvalidAssetName},
		{"backslash", "path\\theme", ErrInvalidAssetName},
		{"parent traversal", "../secret", ErrInvalidAssetName},
		{"extension", "imrc.yaml", ErrInvalidAssetName},
		{"hidden file", ".hidden", ErrInvalidAssetName},
		{"space", "my theme", ErrInvalidAssetName},
		{"non ascii", "thème", ErrInvalidAssetName},
		{"windows absolute", "C:\\themes", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAssetName_MessageNamesInput(t *testing.T) {
	t.Parallel()

	err := ValidateAssetName("../evil")
	if err == nil || !strings.Contains(err.Error(), "../evil") {
		t.Errorf("error = %v, should quote the rejected name", err)
	}
}
