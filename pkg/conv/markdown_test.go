package conv

import (
	"strings"
	"testing"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		md       string
		contains []string
		excludes []string
	}{
		{
			name:     "bold and code survive",
			md:       "**Revenue** grew by `25%`",
			contains: []string{"<strong>Revenue</strong>", "<code>25%</code>"},
		},
		{
			name:     "headings are stripped to text",
			md:       "# Quarterly Report",
			contains: []string{"Quarterly Report"},
			excludes: []string{"<h1>"},
		},
		{
			name:     "script tags removed",
			md:       "hello <script>alert(1)</script> world",
			contains: []string{"hello"},
			excludes: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTelegramHTML([]byte(tt.md))
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got %q", want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("expected output to exclude %q, got %q", bad, got)
				}
			}
		})
	}
}
