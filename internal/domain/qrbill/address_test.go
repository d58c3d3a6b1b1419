package qrbill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tacicek/core-desk-sub002/internal/domain/qrbill"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want qrbill.Address
	}{
		{
			name: "street with number and postal town",
			raw:  "Musterstrasse 12a\n8000 Zürich",
			want: qrbill.Address{Street: "Musterstrasse", BuildingNumber: "12a", PostalCode: "8000", Town: "Zürich"},
		},
		{
			name: "plain house number",
			raw:  "Hauptstrasse 5\n3000 Bern",
			want: qrbill.Address{Street: "Hauptstrasse", BuildingNumber: "5", PostalCode: "3000", Town: "Bern"},
		},
		{
			name: "middle lines ignored",
			raw:  "Bahnhofplatz 1\nPostfach\n3000 Bern",
			want: qrbill.Address{Street: "Bahnhofplatz", BuildingNumber: "1", PostalCode: "3000", Town: "Bern"},
		},
		{
			name: "street without number",
			raw:  "Im Feld\nZürich",
			want: qrbill.Address{Street: "Im Feld", Town: "Zürich"},
		},
		{
			name: "single line",
			raw:  "Hauptstrasse 5",
			want: qrbill.Address{Street: "Hauptstrasse", BuildingNumber: "5"},
		},
		{
			name: "last line without postal code",
			raw:  "Seeweg 3\nLuzern",
			want: qrbill.Address{Street: "Seeweg", BuildingNumber: "3", Town: "Luzern"},
		},
		{
			name: "surrounding whitespace",
			raw:  "  Seeweg 3  \n\n  6000 Luzern ",
			want: qrbill.Address{Street: "Seeweg", BuildingNumber: "3", PostalCode: "6000", Town: "Luzern"},
		},
		{
			name: "empty input",
			raw:  "",
			want: qrbill.Address{},
		},
		{
			name: "whitespace only",
			raw:  "  \n \t ",
			want: qrbill.Address{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, qrbill.ParseAddress(tt.raw))
		})
	}
}

func TestParseAddress_Idempotent(t *testing.T) {
	raw := "Musterstrasse 12a\n8000 Zürich"

	first := qrbill.ParseAddress(raw)
	second := qrbill.ParseAddress(raw)

	assert.Equal(t, first, second)
}
