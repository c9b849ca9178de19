package errors

import "testing"

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		target, n int
		wantErr   bool
	}{
		{0, 1, false},
		{4, 5, false},
		{5, 5, true},
		{-1, 5, true},
	}

	for _, tt := range tests {
		err := ValidateTarget(tt.target, tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTarget(%d, %d) error = %v, wantErr %v", tt.target, tt.n, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidInput) {
			t.Errorf("ValidateTarget(%d, %d) code = %v, want %v", tt.target, tt.n, GetCode(err), ErrCodeInvalidInput)
		}
	}
}

func TestValidateDistribution(t *testing.T) {
	tests := []struct {
		name    string
		counts  []int
		n       int
		wantErr bool
	}{
		{"valid", []int{2, 0, 1}, 3, false},
		{"all zero", []int{0, 0}, 2, false},
		{"too short", []int{1, 1}, 3, true},
		{"too long", []int{1, 1, 1, 1}, 3, true},
		{"negative", []int{1, -1, 0}, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDistribution(tt.counts, tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDistribution(%v, %d) error = %v, wantErr %v", tt.counts, tt.n, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVertexCount(t *testing.T) {
	if err := ValidateVertexCount(10); err != nil {
		t.Errorf("10 vertices should be valid: %v", err)
	}
	if err := ValidateVertexCount(0); err == nil {
		t.Error("0 vertices should be rejected")
	}
	if err := ValidateVertexCount(MaxVertices + 1); err == nil {
		t.Error("oversized graph should be rejected")
	}
}

func TestValidatePebbleRange(t *testing.T) {
	tests := []struct {
		from, to int
		wantErr  bool
	}{
		{1, 10, false},
		{3, 3, false},
		{0, 5, true},
		{5, 4, true},
	}

	for _, tt := range tests {
		err := ValidatePebbleRange(tt.from, tt.to)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePebbleRange(%d, %d) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"graphs/petersen.json", false},
		{"/tmp/g.toml", false},
		{"", true},
		{"bad\x00path", true},
		{" padded.json", true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}
