package util

import "testing"

func TestIsCJK(t *testing.T) {
	for _, r := range "中文汉字" {
		if !IsCJK(r) {
			t.Errorf("IsCJK(%q) = false, want true", r)
		}
	}
	for _, r := range "abc123, " {
		if IsCJK(r) {
			t.Errorf("IsCJK(%q) = true, want false", r)
		}
	}
}

func TestIsPunctuation(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{",.!", true},
		{"，。！", true},
		{"a,", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsPunctuation(tt.s); got != tt.want {
			t.Errorf("IsPunctuation(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("") || !IsBlank("  \t\n") {
		t.Error("blank strings should be blank")
	}
	if IsBlank(" x ") {
		t.Error("' x ' should not be blank")
	}
}
