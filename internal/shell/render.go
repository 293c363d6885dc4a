package shell

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcwhitley/rosterbook/internal/roster"
)

// View renders the whole screen: header, the active panel on the left, the
// department summary on the right, the journal tail, and the status footer.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 100
	}
	rightWidth := max(32, width/3)
	leftWidth := width - rightWidth - 4
	if leftWidth < 40 {
		leftWidth = width - 4
	}
	if leftWidth < 20 {
		leftWidth = width
		rightWidth = 0
	}

	var content string
	switch m.mode {
	case modeEmployeeForm, modeDepartmentForm:
		content = m.renderFormPanel()
	default:
		content = m.renderPromptPanel(leftWidth - 4)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render("⬡ ROSTERBOOK")
	leftBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(max(20, leftWidth)).
		Render(content)
	var body string
	if rightWidth > 0 {
		right := m.renderDepartmentsPanel()
		rightBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1).
			Width(max(20, rightWidth)).
			Render(right)
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
	} else {
		body = leftBox
	}
	sections := []string{header, body}
	if journal := m.renderJournalPanel(); journal != "" {
		sections = append(sections, journal)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(m.statusMsg)
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

// renderPromptPanel shows the transcript tail above the input line.
func (m *Model) renderPromptPanel(width int) string {
	visible := m.transcript
	limit := max(6, m.height-16)
	if len(visible) > limit {
		visible = visible[len(visible)-limit:]
	}
	body := strings.Join(visible, "\n")
	if body == "" {
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Render(`Type "help" to see what rosterbook can do.`)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, body, "", m.input.View())
	return lipgloss.NewStyle().Width(max(20, width)).Render(content)
}

func (m *Model) renderFormPanel() string {
	f := m.form
	if f == nil {
		return ""
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.accent)).
		Render(f.title)
	var lines []string
	for i, field := range f.fields {
		marker := " "
		if f.editing == i {
			marker = ">"
		}
		value := field.value
		if value == "" {
			placeholder := "(blank)"
			if field.required {
				placeholder = "(required)"
			}
			value = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render(placeholder)
		}
		lines = append(lines, fmt.Sprintf("%s %d. %-26s %s", marker, i+1, field.label, value))
	}
	if f.errLine != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Render(f.errLine))
	}
	hint := formHint
	if f.editing >= 0 {
		hint = fmt.Sprintf("New value for %s (empty line clears it):", f.fields[f.editing].label)
	}
	hintLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		MarginTop(1).
		Render(hint)
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n"), hintLine, m.input.View())
}

func (m *Model) renderDepartmentsPanel() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.accent)).
		Render(fmt.Sprintf("Departments (%d)", m.store.DepartmentCount()))
	refs := m.store.ListDepartments()
	if len(refs) == 0 {
		note := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Render(`None yet. "new department" opens the form.`)
		return lipgloss.JoinVertical(lipgloss.Left, title, note)
	}
	var rows []string
	for _, ref := range refs {
		dept, ok := m.store.Department(ref.ID)
		if !ok {
			continue
		}
		rows = append(rows, fmt.Sprintf("%s · %s · %d employee(s)", ref.Alias, dept.Name(), dept.Headcount()))
	}
	total := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		MarginTop(1).
		Render(fmt.Sprintf("%d employee(s) on the books", m.store.EmployeeCount()))
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n"), total)
}

func (m *Model) renderJournalPanel() string {
	if m.journal == nil {
		return ""
	}
	tail := 8
	if m.cfg != nil {
		tail = m.cfg.JournalTail()
	}
	lines := m.journal.Tail(tail)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(m.journal.Path())
	if fileName == "." || fileName == "" {
		fileName = "journal"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.accent)).
		Render(fmt.Sprintf("JOURNAL · %s", fileName))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}

// departmentName resolves an id for display; the fallback only shows up if
// the books are corrupted.
func (m *Model) departmentName(id roster.DepartmentID) string {
	if dept, ok := m.store.Department(id); ok {
		return dept.Name()
	}
	return fmt.Sprintf("department #%d", id)
}

// departmentTable lays the departments out as fixed-width transcript text,
// ordered by alias.
func (m *Model) departmentTable() []string {
	refs := m.store.ListDepartments()
	if len(refs) == 0 {
		return []string{"No departments found."}
	}
	type deptRow struct {
		alias string
		dept  *roster.Department
	}
	rows := make([]deptRow, 0, len(refs))
	aliasWidth, nameWidth := len("ALIAS"), len("NAME")
	for _, ref := range refs {
		dept, ok := m.store.Department(ref.ID)
		if !ok {
			continue
		}
		aliasWidth = max(aliasWidth, len(ref.Alias))
		nameWidth = max(nameWidth, len(dept.Name()))
		rows = append(rows, deptRow{alias: ref.Alias, dept: dept})
	}
	lines := []string{fmt.Sprintf("  %-*s  %4s  %-*s  %s", aliasWidth, "ALIAS", "ID", nameWidth, "NAME", "EMPLOYEES")}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("  %-*s  %4d  %-*s  %d",
			aliasWidth, row.alias,
			row.dept.ID(),
			nameWidth, row.dept.Name(),
			row.dept.Headcount()))
	}
	return lines
}

// employeeTable lays the employees out as fixed-width transcript text,
// ordered by last name, then first name, then id.
func (m *Model) employeeTable() []string {
	refs := m.store.ListPeople()
	if len(refs) == 0 {
		return []string{"No employees found."}
	}
	type personRow struct {
		alias  string
		person *roster.Person
	}
	rows := make([]personRow, 0, len(refs))
	for _, ref := range refs {
		person, ok := m.store.Person(ref.ID)
		if !ok {
			continue
		}
		rows = append(rows, personRow{alias: ref.Alias, person: person})
	}
	slices.SortFunc(rows, func(a, b personRow) int {
		if c := a.person.Name().Compare(b.person.Name()); c != 0 {
			return c
		}
		return cmp.Compare(a.person.ID(), b.person.ID())
	})
	nameWidth, aliasWidth, deptWidth := len("NAME"), len("ALIAS"), len("DEPARTMENT")
	for _, row := range rows {
		nameWidth = max(nameWidth, len(row.person.Name().String()))
		aliasWidth = max(aliasWidth, len(row.alias))
		deptWidth = max(deptWidth, len(m.departmentName(row.person.Department())))
	}
	lines := []string{fmt.Sprintf("  %-*s  %-*s  %-*s  %s", nameWidth, "NAME", aliasWidth, "ALIAS", deptWidth, "DEPARTMENT", "HIRED")}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("  %-*s  %-*s  %-*s  %s",
			nameWidth, row.person.Name().String(),
			aliasWidth, row.alias,
			deptWidth, m.departmentName(row.person.Department()),
			row.person.HiredOn()))
	}
	return lines
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
