package interchange

import "strings"

// ParseCSVLine splits one CSV line into fields with a single-pass scanner.
// Outside quotes a comma ends the current field; a double quote toggles quote
// mode; a doubled quote inside quotes emits one literal quote. The final field
// is always flushed, even when empty. The scanner is line-oriented: embedded
// newlines inside quoted fields are not supported.
func ParseCSVLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	fields = append(fields, current.String())
	return fields
}
