package errors

import "testing"

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, d, h int
		wantErr bool
	}{
		{"default", 8, 8, 8, false},
		{"flat", 4, 4, 1, false},
		{"zero width", 0, 8, 8, true},
		{"negative height", 8, 8, -1, true},
		{"too deep", 8, MaxGridSide + 1, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.w, tt.d, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidatePieceCount(t *testing.T) {
	tests := []struct {
		name    string
		pieces  int
		palette int
		wantErr bool
	}{
		{"six of ten", 6, 10, false},
		{"full palette", 10, 10, false},
		{"zero pieces", 0, 10, true},
		{"exceeds palette", 11, 10, true},
		{"empty palette", 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePieceCount(tt.pieces, tt.palette)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePieceCount() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "puzzle", false},
		{"with dots", "puzzle.v2", false},
		{"empty", "", true},
		{"traversal", "../puzzle", true},
		{"nested", "out/puzzle", true},
		{"backslash", `out\puzzle`, true},
		{"control", "puz\x00zle", true},
		{"dot", ".", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
