package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalary(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{
			name:     "Single salary",
			text:     "Prefeitura de Exemplo - SP. Salário R$ 1.500,00. Inscrições até 31/12/2099.",
			expected: 1500.0,
		},
		{
			name:     "Range takes the ceiling",
			text:     "Vagas com vencimentos de R$ 2.000,00 a R$ 5.500,00",
			expected: 5500.0,
		},
		{
			name:     "Fee amount discarded",
			text:     "Taxa de inscrição de R$ 80,00",
			expected: 0,
		},
		{
			name:     "Fee plus salary keeps the salary",
			text:     "Taxa de R$ 120,00. Remuneração R$ 3.210,45",
			expected: 3210.45,
		},
		{
			name:     "No cents",
			text:     "até R$ 12.000",
			expected: 12000.0,
		},
		{
			name:     "No thousands separator",
			text:     "Vencimento de R$ 5500 mensais",
			expected: 5500.0,
		},
		{
			name:     "No thousands separator with cents",
			text:     "Salário R$ 1500,00",
			expected: 1500.0,
		},
		{
			name:     "Suffix form without currency marker",
			text:     "vencimento de 4.466,43 bruto mensal",
			expected: 4466.43,
		},
		{
			name:     "No salary stated",
			text:     "Concurso para diversos cargos, ver edital",
			expected: 0,
		},
		{
			name:     "Empty text",
			text:     "",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Salary(tt.text), 0.001)
		})
	}
}

func TestSalary_MaxOfAllMentions(t *testing.T) {
	//order in text must not matter, the max always wins
	assert.InDelta(t, 9800.0, Salary("R$ 9.800,00 inicial, podendo chegar a R$ 7.500,00? não: R$ 620,00 de taxa"), 0.001)
	assert.InDelta(t, 9800.0, Salary("taxa R$ 620,00, inicial R$ 7.500,00, teto R$ 9.800,00"), 0.001)
}

func TestSalary_UnseparatedNeverTruncated(t *testing.T) {
	//a bare digit run must parse whole, not stop at the first three digits
	assert.InDelta(t, 5500.0, Salary("R$ 5500"), 0.001)
	//and a truncated parse must not demote a real salary below the fee cut
	assert.InDelta(t, 1500.0, Salary("taxa R$ 80,00, salário R$ 1500,00"), 0.001)
}

func TestParseBRL(t *testing.T) {
	v, ok := parseBRL("1.234,56")
	assert.True(t, ok)
	assert.InDelta(t, 1234.56, v, 0.001)

	v, ok = parseBRL("950")
	assert.True(t, ok)
	assert.InDelta(t, 950.0, v, 0.001)

	_, ok = parseBRL("abc")
	assert.False(t, ok)
}
