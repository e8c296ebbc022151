package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeadline(t *testing.T) {
	ref := date(2024, time.January, 1)

	tests := []struct {
		name     string
		text     string
		expected time.Time
		found    bool
	}{
		{
			name:     "Full date",
			text:     "Inscrições até 31/12/2099.",
			expected: date(2099, time.December, 31),
			found:    true,
		},
		{
			name:     "Latest of several dates wins",
			text:     "Edital publicado em 05/01/2024, provas em 10/02/2024, inscrições até 20/03/2024",
			expected: date(2024, time.March, 20),
			found:    true,
		},
		{
			name:     "Two digit year expanded",
			text:     "encerram em 15/03/26",
			expected: date(2026, time.March, 15),
			found:    true,
		},
		{
			name:  "No date at all",
			text:  "Concurso com salário de R$ 2.500,00",
			found: false,
		},
		{
			name:  "Malformed date skipped silently",
			text:  "data 99/99/2024 inválida",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Deadline(tt.text, ref)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestDeadline_NoYearUsesReferenceYear(t *testing.T) {
	ref := date(2024, time.June, 15)

	//month ahead of the reference month stays in the reference year
	got, ok := Deadline("inscrições até 20/12", ref)
	assert.True(t, ok)
	assert.Equal(t, date(2024, time.December, 20), got)

	//month behind the reference month rolls into next year
	got, ok = Deadline("inscrições até 10/02", ref)
	assert.True(t, ok)
	assert.Equal(t, date(2025, time.February, 10), got)
}

func TestDeadline_PartialNotDoubleCounted(t *testing.T) {
	//the dd/mm head of a full date must not be re-parsed as a yearless date
	ref := date(2024, time.June, 1)
	got, ok := Deadline("até 31/01/2024", ref)
	assert.True(t, ok)
	assert.Equal(t, date(2024, time.January, 31), got)
}
