package listing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	salaryPlaceholder   = "A consultar / Variável"
	deadlinePlaceholder = "Indefinida"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatSalary renders a value as Brazilian currency ("R$ 1.234,56").
// Zero means the announcement never stated a figure.
func FormatSalary(v float64) string {
	if v <= 0 {
		return salaryPlaceholder
	}
	return brl.Sprintf("R$ %v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Display projects a record into its caller-facing shape.
func (r *Record) Display() DisplayRecord {
	deadline := deadlinePlaceholder
	if r.HasDeadline {
		deadline = r.Deadline.Format("02/01/2006")
	}

	return DisplayRecord{
		Salary:   FormatSalary(r.Salary),
		Region:   r.Region,
		Deadline: deadline,
		Text:     r.Text,
		Link:     r.Link,
	}
}
