package interchange

import (
	"reflect"
	"testing"
)

func TestParseCSVLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "2024-01-15,expense,Groceries,Food,42.50",
			want: []string{"2024-01-15", "expense", "Groceries", "Food", "42.50"},
		},
		{
			name: "quoted field with comma",
			line: `a,"b,c",d`,
			want: []string{"a", "b,c", "d"},
		},
		{
			name: "doubled quote inside quoted field",
			line: `a,"b""c",d`,
			want: []string{"a", `b"c`, "d"},
		},
		{
			name: "empty trailing field is flushed",
			line: "a,b,",
			want: []string{"a", "b", ""},
		},
		{
			name: "empty line yields one empty field",
			line: "",
			want: []string{""},
		},
		{
			name: "fully quoted row",
			line: `"2024-01-15","expense","Dinner, out","Food","18.99"`,
			want: []string{"2024-01-15", "expense", "Dinner, out", "Food", "18.99"},
		},
		{
			name: "unterminated quote consumes rest of line",
			line: `a,"b,c`,
			want: []string{"a", "b,c"},
		},
		{
			name: "multibyte runes survive",
			line: `café,"naïve, really",ok`,
			want: []string{"café", "naïve, really", "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCSVLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCSVLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
