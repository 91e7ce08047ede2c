package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("cannot determine home directory: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde prefix expands to home",
			input:    "~/.cfg",
			expected: filepath.Join(home, ".cfg"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/etc/passwd",
			expected: "/etc/passwd",
		},
		{
			name:     "relative path unchanged",
			input:    ".bashrc",
			expected: ".bashrc",
		},
		{
			name:     "bare tilde unchanged",
			input:    "~",
			expected: "~",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandPath(tt.input)
			if got != tt.expected {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolveUnder(t *testing.T) {
	root := "/home/user"

	tests := []struct {
		name      string
		rel       string
		expected  string
		expectErr bool
	}{
		{
			name:     "simple dotfile",
			rel:      ".bashrc",
			expected: "/home/user/.bashrc",
		},
		{
			name:     "nested path",
			rel:      ".config/nvim/init.lua",
			expected: "/home/user/.config/nvim/init.lua",
		},
		{
			name:     "internal dotdot that stays local",
			rel:      ".config/../.bashrc",
			expected: "/home/user/.bashrc",
		},
		{
			name:      "empty path rejected",
			rel:       "",
			expectErr: true,
		},
		{
			name:      "absolute path rejected",
			rel:       "/etc/passwd",
			expectErr: true,
		},
		{
			name:      "parent traversal rejected",
			rel:       "../other/.bashrc",
			expectErr: true,
		},
		{
			name:      "deep traversal rejected",
			rel:       ".config/../../escape",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveUnder(root, tt.rel)
			if tt.expectErr {
				if err == nil {
					t.Errorf("ResolveUnder(%q, %q) expected error, got %q", root, tt.rel, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveUnder(%q, %q) unexpected error: %v", root, tt.rel, err)
			}
			if got != tt.expected {
				t.Errorf("ResolveUnder(%q, %q) = %q, want %q", root, tt.rel, got, tt.expected)
			}
		})
	}
}
