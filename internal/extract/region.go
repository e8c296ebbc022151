package extract

import (
	"regexp"
	"strings"

	"concurso-hunter/internal/textutil"
)

// RegionOther is the sentinel for listings that could not be localized:
// nationwide openings, or blocks where no UF was detected.
const RegionOther = "Nacional/Outro"

// UFCodes is the fixed set of 27 Brazilian state codes.
var UFCodes = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS",
	"MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC",
	"SP", "SE", "TO",
}

// Word boundaries keep a code from matching inside an unrelated word
// ("BAHIA" must not read as BA). Uppercase only: lowercase bigrams like
// "se" and "de" are ordinary Portuguese words.
var ufRegex = regexp.MustCompile(`\b(` + strings.Join(UFCodes, "|") + `)\b`)

// Full state names, already lowercase and accent-stripped, checked in order
// when no explicit code appears. Multi-word names first so the most
// specific match wins.
var stateNames = []struct {
	name string
	code string
}{
	{"rio grande do norte", "RN"},
	{"rio grande do sul", "RS"},
	{"mato grosso do sul", "MS"},
	{"mato grosso", "MT"},
	{"rio de janeiro", "RJ"},
	{"distrito federal", "DF"},
	{"minas gerais", "MG"},
	{"espirito santo", "ES"},
	{"santa catarina", "SC"},
	{"sao paulo", "SP"},
	{"rondonia", "RO"},
	{"roraima", "RR"},
	{"tocantins", "TO"},
	{"maranhao", "MA"},
	{"amazonas", "AM"},
	{"alagoas", "AL"},
	{"sergipe", "SE"},
	{"paraiba", "PB"},
	{"pernambuco", "PE"},
	{"parana", "PR"},
	{"goias", "GO"},
	{"amapa", "AP"},
	{"bahia", "BA"},
	{"ceara", "CE"},
	{"piaui", "PI"},
	{"acre", "AC"},
	//"para" alone is the preposition once accents are stripped
	{"do para", "PA"},
}

// Region returns the two-letter UF detected in text, preferring an explicit
// code over a spelled-out state name. Falls back to RegionOther.
func Region(text string) string {
	if m := ufRegex.FindString(text); m != "" {
		return m
	}

	normalized := textutil.Normalize(text)
	for _, s := range stateNames {
		if strings.Contains(normalized, s.name) {
			return s.code
		}
	}

	return RegionOther
}
