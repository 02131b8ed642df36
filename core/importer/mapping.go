package importer

import "strings"

// Mapping ties student fields to header labels of a generic sheet. The
// suggestions produced by SuggestMapping are editable before commit; only
// MassarID is mandatory.
type Mapping struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	BirthDate string `json:"birthDate"`
	MassarID  string `json:"massarId"`
	ClassName string `json:"className"`
}

// SuggestMapping guesses column roles by case-insensitive substring match
// against the header row. Misses simply leave the field empty.
func SuggestMapping(headers []string) Mapping {
	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(h)
	}

	var m Mapping
	for i, h := range lower {
		if strings.Contains(h, "massar") || strings.Contains(h, "code") || h == "id" {
			m.MassarID = headers[i]
			break
		}
	}
	for i, h := range lower {
		if (strings.Contains(h, "date") && (strings.Contains(h, "naissance") || strings.Contains(h, "birth"))) ||
			h == "ddn" || h == "dob" || h == "date" {
			m.BirthDate = headers[i]
			break
		}
	}
	for i, h := range lower {
		if strings.Contains(h, "nom") || strings.Contains(h, "name") {
			m.LastName = headers[i]
			break
		}
	}
	return m
}

func headerIndex(headers []string, label string) int {
	if label == "" {
		return -1
	}
	for i, h := range headers {
		if h == label {
			return i
		}
	}
	return -1
}
