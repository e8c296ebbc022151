package extract

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Education levels inferred from role keywords.
const (
	LevelFundamental = "fundamental"
	LevelMedio       = "medio"
	LevelSuperior    = "superior"
)

// Keyword families per level, accent-stripped lowercase — matched against
// normalized text. A listing can carry several levels (multi-cargo
// announcements) or none at all when nothing is detected.
var educationTerms = []struct {
	level string
	terms []string
}{
	{
		level: LevelFundamental,
		terms: []string{
			"nivel fundamental", "ensino fundamental", "alfabetizado",
			"gari", "merendeira", "vigia", "zelador", "coveiro",
			"auxiliar de servicos gerais", "servente",
		},
	},
	{
		level: LevelMedio,
		terms: []string{
			"nivel medio", "ensino medio", "tecnico", "assistente",
			"auxiliar administrativo", "recepcionista", "agente administrativo",
			"agente comunitario", "fiscal",
		},
	},
	{
		level: LevelSuperior,
		terms: []string{
			"nivel superior", "ensino superior", "graduacao", "medico",
			"enfermeiro", "engenheiro", "advogado", "analista", "professor",
			"juiz", "procurador", "promotor", "contador", "psicologo",
			"farmaceutico", "arquiteto", "odontologo", "nutricionista",
			"fisioterapeuta", "veterinario", "especialista",
		},
	},
}

// EducationLevels infers the education levels mentioned in an announcement.
// Input must already be normalized (see textutil.Normalize).
func EducationLevels(normalizedText string) mapset.Set[string] {
	levels := mapset.NewSet[string]()
	for _, family := range educationTerms {
		for _, term := range family.terms {
			if strings.Contains(normalizedText, term) {
				levels.Add(family.level)
				break
			}
		}
	}
	return levels
}
