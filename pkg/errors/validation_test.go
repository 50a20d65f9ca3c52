package errors

import (
	"math"
	"testing"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantErr       bool
	}{
		{"typical wall", 2300, 2000, false},
		{"single course", 500, 62.5, false},
		{"upper limit", MaxWallDimension, MaxWallDimension, false},

		{"zero width", 0, 2000, true},
		{"negative width", -10, 2000, true},
		{"below one course", 2300, 60, true},
		{"nan width", math.NaN(), 2000, true},
		{"infinite height", 2300, math.Inf(1), true},
		{"too wide", MaxWallDimension + 1, 2000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%v, %v) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidDimensions {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidDimensions)
			}
		})
	}
}

func TestValidateChoice(t *testing.T) {
	valid := []string{"naive", "sweep", "greedy"}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"known", "sweep", false},
		{"empty", "", true},
		{"unknown", "random", true},
		{"case sensitive", "Sweep", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChoice(ErrCodeInvalidStrategy, "strategy", tt.input, valid)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChoice(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidStrategy) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidStrategy)
			}
		})
	}
}
