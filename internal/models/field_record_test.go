package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldRecord_Amount(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int64
	}{
		{"plain number", "45000", 45000},
		{"thousands separators", "1,234,567", 1234567},
		{"surrounding whitespace", "  5700 ", 5700},
		{"blank reads as zero", "", 0},
		{"malformed reads as zero", "forty-five", 0},
		{"decimal reads as zero", "45000.50", 0},
		{"negative reads as zero", "-100", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FieldRecord{FieldServiceFee: tt.value}
			assert.Equal(t, tt.want, r.Amount(FieldServiceFee))
		})
	}

	t.Run("missing key reads as zero", func(t *testing.T) {
		assert.Equal(t, int64(0), FieldRecord{}.Amount(FieldServiceFee))
	})
}

func TestFieldRecord_Count(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   int
		want  int
	}{
		{"plain count", "3", 1, 3},
		{"blank falls back", "", 1, 1},
		{"malformed falls back", "three", 1, 1},
		{"zero falls back", "0", 1, 1},
		{"negative falls back", "-2", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FieldRecord{FieldApplicantCount: tt.value}
			assert.Equal(t, tt.want, r.Count(FieldApplicantCount, tt.def))
		})
	}
}

func TestFieldRecord_TextHelpers(t *testing.T) {
	r := FieldRecord{
		FieldClientName:  "  Arben Hoxha  ",
		FieldNationality: "",
	}

	assert.Equal(t, "Arben Hoxha", r.Text(FieldClientName))
	assert.True(t, r.Has(FieldClientName))
	assert.False(t, r.Has(FieldNationality))
	assert.False(t, r.Has(FieldPassportNumber))
	assert.Equal(t, "unknown", r.TextOr(FieldNationality, "unknown"))
	assert.Equal(t, "Arben Hoxha", r.TextOr(FieldClientName, "unknown"))
}

func TestFieldRecord_Clone(t *testing.T) {
	orig := FieldRecord{FieldServiceFee: "45000"}
	clone := orig.Clone()

	orig[FieldServiceFee] = "99999"
	orig[FieldNotes] = "added later"

	assert.Equal(t, "45000", clone[FieldServiceFee])
	assert.NotContains(t, clone, FieldNotes)
}

func TestFieldRecord_CloneNil(t *testing.T) {
	var r FieldRecord
	clone := r.Clone()

	assert.NotNil(t, clone)
	assert.Empty(t, clone)
}
