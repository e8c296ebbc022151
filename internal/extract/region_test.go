package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegion(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Explicit UF code",
			text:     "Prefeitura de Exemplo - SP. Salário R$ 1.500,00.",
			expected: "SP",
		},
		{
			name:     "Code needs word boundaries",
			text:     "TRIBUNAL REGIONAL DO TRABALHO",
			expected: RegionOther,
		},
		{
			name:     "Full state name fallback",
			text:     "Governo do Estado da Bahia abre concurso",
			expected: "BA",
		},
		{
			name:     "Accented state name",
			text:     "Prefeitura de São Paulo contrata",
			expected: "SP",
		},
		{
			name:     "Compound state name",
			text:     "Secretaria do Rio Grande do Sul",
			expected: "RS",
		},
		{
			name:     "Nothing detected",
			text:     "Concurso nacional para diversos cargos",
			expected: RegionOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Region(tt.text))
		})
	}
}

func TestRegion_CodeBeatsName(t *testing.T) {
	//explicit code wins even when another state is spelled out
	assert.Equal(t, "RJ", Region("Vaga em RJ, próximo à divisa com Minas Gerais"))
}

func TestEducationLevels(t *testing.T) {
	levels := EducationLevels("vagas para medico, enfermeiro e tecnico em radiologia")
	assert.True(t, levels.Contains(LevelSuperior))
	assert.True(t, levels.Contains(LevelMedio))
	assert.False(t, levels.Contains(LevelFundamental))

	assert.Equal(t, 0, EducationLevels("vagas diversas, ver edital").Cardinality())
}
