package core

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "nil", value: nil, want: "2000-01-01"},
		{name: "empty string", value: "", want: "2000-01-01"},
		{name: "blank string", value: "   ", want: "2000-01-01"},
		{name: "garbage", value: "not a date", want: "2000-01-01"},
		{name: "serial number", value: 43567, want: "2019-04-19"},
		{name: "serial float", value: 43567.0, want: "2019-04-19"},
		{name: "serial as text", value: "43567", want: "2019-04-19"},
		{name: "epoch origin", value: 25569, want: "1970-01-01"},
		{name: "day first slash", value: "15/03/2021", want: "2021-03-15"},
		{name: "day first dash", value: "15-03-2021", want: "2021-03-15"},
		{name: "day first unpadded", value: "1/2/2020", want: "2020-02-01"},
		{name: "ambiguous is day first", value: "01-02-2020", want: "2020-02-01"},
		{name: "year first", value: "2021-03-15", want: "2021-03-15"},
		{name: "year first slash unpadded", value: "2021/3/5", want: "2021-03-05"},
		{name: "year first with time tail", value: "2021-03-15T10:30:00", want: "2021-03-15"},
		{name: "loose text", value: "January 2, 2006", want: "2006-01-02"},
		{name: "whitespace around value", value: " 15/03/2021 ", want: "2021-03-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDate(tt.value); got != tt.want {
				t.Errorf("NormalizeDate(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
