package importer_test

import (
	"testing"

	"github.com/daftarhq/daftar/core/importer"
)

func TestSuggestMapping(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    importer.Mapping
	}{
		{
			name:    "french roster export",
			headers: []string{"Nom", "DateNaissance", "CodeMassar"},
			want:    importer.Mapping{LastName: "Nom", BirthDate: "DateNaissance", MassarID: "CodeMassar"},
		},
		{
			name:    "english labels",
			headers: []string{"Full Name", "Date of Birth", "ID"},
			want:    importer.Mapping{LastName: "Full Name", BirthDate: "Date of Birth", MassarID: "ID"},
		},
		{
			name:    "short date aliases",
			headers: []string{"nom", "ddn", "massar"},
			want:    importer.Mapping{LastName: "nom", BirthDate: "ddn", MassarID: "massar"},
		},
		{
			name:    "no recognizable headers",
			headers: []string{"Colonne1", "Colonne2"},
			want:    importer.Mapping{},
		},
		{
			name:    "first match wins",
			headers: []string{"CodeMassar", "AutreCode", "Nom", "Prenom"},
			want:    importer.Mapping{MassarID: "CodeMassar", LastName: "Nom"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := importer.SuggestMapping(tt.headers); got != tt.want {
				t.Errorf("SuggestMapping() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
