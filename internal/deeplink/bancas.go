package deeplink

import (
	"regexp"
	"strings"
)

// Known exam-board ("banca") name fragments. An anchor pointing at one of
// these is almost certainly the inscription site, so it outranks the
// generic term heuristics.
var bancaTerms = []string{
	"aocp", "avancasp", "cebraspe", "cespe", "cesgranrio", "ceperj",
	"cetap", "cetro", "ciee", "comperve", "consulplan", "consulpam",
	"consesp", "copese", "copeve", "covest", "esaf", "fadesp", "faepese",
	"fafipa", "faurgs", "fcc", "fepese", "fgv", "fumarc", "funcern",
	"fundatec", "fundep", "funiversa", "funrio", "ibade", "ibam", "ibfc",
	"ibgp", "idecan", "idib", "ieses", "imparh", "inaz", "incp", "indec",
	"inep", "institutomais", "iobv", "legalle", "makiyama", "metodo",
	"msconcursos", "nossorumo", "nc.ufpr", "objetiva", "omni", "pontua",
	"quadrix", "rbo", "selecon", "shdias", "sousandrade", "sugep",
	"uece", "uel", "uem", "uepb", "uerj", "ufac", "ufam", "ufba", "ufcg",
	"uff", "ufgd", "ufma", "ufmg", "ufmt", "ufpa", "ufpe", "ufpel",
	"ufpr", "ufrgs", "ufrj", "ufrn", "ufsc", "ufsm", "ufv", "unama",
	"uneb", "unemat", "unesp", "unicamp", "unicentro", "unifesp",
	"unimontes", "unioeste", "unirio", "univali", "univasf", "upe",
	"usp", "utfpr", "vunesp", "zambini",
}

var bancaRegex = buildBancaRegex(bancaTerms)

func buildBancaRegex(terms []string) *regexp.Regexp {
	escaped := make([]string, 0, len(terms))
	for _, t := range terms {
		escaped = append(escaped, regexp.QuoteMeta(t))
	}
	return regexp.MustCompile(`(?i)` + strings.Join(escaped, "|"))
}
