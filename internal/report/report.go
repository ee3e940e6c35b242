// Package report renders the parsed policy and the remediation outcome as a
// Markdown document, with optional PDF output for offline review.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cpsec/warden/internal/readme"
	"github.com/cpsec/warden/internal/tasks"
)

var titleCaser = cases.Title(language.English)

// Render produces the full Markdown compliance report.
func Render(doc *readme.PolicyDocument, results []tasks.Result, suggestions []string) string {
	var b strings.Builder

	title := doc.Title
	if title == "" {
		title = "Hardening Report"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if doc.OperatingSystem != "" {
		fmt.Fprintf(&b, "Operating system: %s\n\n", doc.OperatingSystem)
	}

	writeUsers(&b, doc)
	writeSoftware(&b, doc)
	writeServices(&b, doc)
	writeActions(&b, doc)
	writeGuidelines(&b, doc)
	writeResults(&b, results)
	writeSuggestions(&b, suggestions)

	return b.String()
}

func writeUsers(b *strings.Builder, doc *readme.PolicyDocument) {
	if len(doc.Administrators) == 0 && len(doc.Users) == 0 && len(doc.UsersToCreate) == 0 {
		return
	}
	b.WriteString("## Accounts\n\n")
	for _, u := range doc.Administrators {
		line := "- " + u.Username + " (administrator"
		if u.IsPrimaryUser {
			line += ", primary"
		}
		line += ")"
		b.WriteString(line + "\n")
	}
	for _, u := range doc.Users {
		b.WriteString("- " + u.Username + "\n")
	}
	for _, u := range doc.UsersToCreate {
		b.WriteString("- " + u + " (to create)\n")
	}
	b.WriteString("\n")
	for _, g := range doc.GroupRequirements {
		fmt.Fprintf(b, "Group %s: %s\n\n", g.GroupName, strings.Join(g.Members, ", "))
	}
}

func writeSoftware(b *strings.Builder, doc *readme.PolicyDocument) {
	if len(doc.RequiredSoftware) == 0 && len(doc.ProhibitedSoftware) == 0 {
		return
	}
	b.WriteString("## Software\n\n")
	for _, req := range doc.RequiredSoftware {
		line := "- required: " + req.Name
		if req.ShouldBeLatest {
			line += " (latest)"
		}
		if req.Notes != "" {
			line += " - " + req.Notes
		}
		b.WriteString(line + "\n")
	}
	for _, kw := range doc.ProhibitedSoftware {
		b.WriteString("- prohibited: " + titleCaser.String(kw) + "\n")
	}
	b.WriteString("\n")
}

func writeServices(b *strings.Builder, doc *readme.PolicyDocument) {
	if len(doc.CriticalServices) == 0 && len(doc.ProhibitedServices) == 0 {
		return
	}
	b.WriteString("## Services\n\n")
	for _, svc := range doc.CriticalServices {
		b.WriteString("- keep running: " + svc + "\n")
	}
	for _, svc := range doc.ProhibitedServices {
		b.WriteString("- disable: " + svc + "\n")
	}
	b.WriteString("\n")
}

func writeActions(b *strings.Builder, doc *readme.PolicyDocument) {
	if len(doc.ActionableItems) == 0 {
		return
	}
	b.WriteString("## Actionable Items\n\n")
	for _, item := range doc.ActionableItems {
		fmt.Fprintf(b, "- [%s] %s\n", item.Type, item.Description)
	}
	b.WriteString("\n")
}

func writeGuidelines(b *strings.Builder, doc *readme.PolicyDocument) {
	if len(doc.Guidelines) == 0 {
		return
	}
	b.WriteString("## Competition Guidelines\n\n")
	for _, g := range doc.Guidelines {
		b.WriteString("- " + g + "\n")
	}
	b.WriteString("\n")
}

func writeResults(b *strings.Builder, results []tasks.Result) {
	if len(results) == 0 {
		return
	}
	b.WriteString("## Commands\n\n")
	for _, res := range results {
		status := "ok"
		if res.Err != nil {
			status = "failed: " + res.Err.Error()
		}
		fmt.Fprintf(b, "- `%s` - %s (%s)\n", res.Command.String(), res.Command.Reason, status)
	}
	b.WriteString("\n")
}

func writeSuggestions(b *strings.Builder, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	b.WriteString("## Advisor Suggestions\n\n")
	for _, s := range suggestions {
		b.WriteString("- " + s + "\n")
	}
	b.WriteString("\n")
}
