package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hey-sweetie-print/models"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(0, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

const cat = `     meow

    |\---/|
    | ,_, |
     \_` + "`" + `_/-..----.
  ___/ ` + "`" + `   ' ,""+ \
 (__...'   __\    |` + "`" + `.___.';
   (_,...'(_,.` + "`" + `__)/'.....+`

// Banner summarises a finished run for the terminal
func Banner(s models.PrintSummary) string {
	if s.NothingToPrint() {
		return bannerStyle.Render(titleStyle.Render("Nothing to print") +
			fmt.Sprintf("\n%d rows read, no orders selected", s.RowsRead))
	}

	var b strings.Builder
	b.WriteString(cat)
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Done! Ship them sweeties yo!"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "\nOrders:   %d selected, %d entries", s.Selected, s.Entries)
	fmt.Fprintf(&b, "\nMessages: %d on %d pages", s.MessageCount, s.MessagePages)
	fmt.Fprintf(&b, "\nLabels:   %d on %d pages", s.Entries, s.LabelPages)
	if s.MessagesPath != "" {
		fmt.Fprintf(&b, "\n\n%s", s.MessagesPath)
	}
	if s.LabelsPath != "" {
		fmt.Fprintf(&b, "\n%s", s.LabelsPath)
	}
	for _, link := range s.Uploaded {
		fmt.Fprintf(&b, "\n☁️  %s", link)
	}
	return bannerStyle.Render(b.String())
}
