package transaction

import (
	"reflect"
	"testing"
)

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name string
		data FormData
		want []string
	}{
		{
			name: "valid form",
			data: FormData{Description: "Groceries", Amount: "42.50", Category: "Food", Date: "2024-01-15"},
			want: nil,
		},
		{
			name: "whitespace description is missing",
			data: FormData{Description: "   ", Amount: "10", Category: "Food", Date: "2024-01-15"},
			want: []string{"Description is required"},
		},
		{
			name: "zero amount",
			data: FormData{Description: "Groceries", Amount: "0", Category: "Food", Date: "2024-01-15"},
			want: []string{"Amount must be a valid number greater than 0"},
		},
		{
			name: "negative amount",
			data: FormData{Description: "Groceries", Amount: "-5", Category: "Food", Date: "2024-01-15"},
			want: []string{"Amount must be a valid number greater than 0"},
		},
		{
			name: "non-numeric amount",
			data: FormData{Description: "Groceries", Amount: "abc", Category: "Food", Date: "2024-01-15"},
			want: []string{"Amount must be a valid number greater than 0"},
		},
		{
			name: "amount with surrounding whitespace is accepted",
			data: FormData{Description: "Groceries", Amount: " 42.50 ", Category: "Food", Date: "2024-01-15"},
			want: nil,
		},
		{
			name: "all fields missing reports every violation",
			data: FormData{},
			want: []string{
				"Description is required",
				"Amount must be a valid number greater than 0",
				"Category is required",
				"Date is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateForm(tt.data)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateForm() = %v, want %v", got, tt.want)
			}
		})
	}
}
