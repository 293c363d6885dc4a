package shell

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcwhitley/rosterbook/internal/roster"
)

const formHint = `Enter a field number to edit, "commit" to finish, "cancel" to abandon.`

// formField is one numbered line in a form.
type formField struct {
	label    string
	value    string
	required bool
}

// form is the numbered-field editor both entity forms share. The user picks
// a field by its number, types a value for it, and finishes with "commit".
type form struct {
	title   string
	fields  []formField
	editing int    // field index being edited, -1 while choosing
	errLine string // feedback shown under the fields
}

// Employee form field positions.
const (
	fieldEmpAlias = iota
	fieldEmpFirst
	fieldEmpMiddle
	fieldEmpLast
	fieldEmpHired
	fieldEmpDept
)

func newEmployeeForm() *form {
	return &form{
		title: "New employee",
		fields: []formField{
			{label: "Alias", required: true},
			{label: "First name", required: true},
			{label: "Middle name"},
			{label: "Last name", required: true},
			{label: "Date of hire (MM/DD/YYYY)", value: roster.Today().String(), required: true},
			{label: "Department", required: true},
		},
		editing: -1,
	}
}

// Department form field positions.
const (
	fieldDeptAlias = iota
	fieldDeptName
)

func newDepartmentForm() *form {
	return &form{
		title: "New department",
		fields: []formField{
			{label: "Unique identifier", required: true},
			{label: "Full name", required: true},
		},
		editing: -1,
	}
}

// missing lists the labels of required fields still blank.
func (f *form) missing() []string {
	var labels []string
	for _, field := range f.fields {
		if field.required && strings.TrimSpace(field.value) == "" {
			labels = append(labels, field.label)
		}
	}
	return labels
}

// handleFormLine consumes one input line while a form is open. When a field
// is being edited the line is its new value, an empty line clearing it;
// otherwise it is a field number or one of the "commit"/"cancel" words.
func (m *Model) handleFormLine(line string) (tea.Model, tea.Cmd) {
	f := m.form
	if f == nil {
		m.mode = modePrompt
		return m, nil
	}

	if f.editing >= 0 {
		f.fields[f.editing].value = line
		f.editing = -1
		f.errLine = ""
		return m, nil
	}

	switch strings.ToLower(line) {
	case "":
		return m, nil
	case "commit":
		return m.commitForm()
	case "cancel":
		m.abandonForm()
		return m, nil
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(f.fields) {
		f.errLine = fmt.Sprintf("No field %q here. %s", line, formHint)
		return m, nil
	}
	f.editing = num - 1
	f.errLine = ""
	return m, nil
}

// commitForm validates required fields, then hands off to the store.
func (m *Model) commitForm() (tea.Model, tea.Cmd) {
	f := m.form
	if labels := f.missing(); len(labels) > 0 {
		f.errLine = "Still required: " + strings.Join(labels, ", ")
		return m, nil
	}
	switch m.mode {
	case modeDepartmentForm:
		return m.commitDepartment(f)
	case modeEmployeeForm:
		return m.commitEmployee(f)
	}
	return m, nil
}

func (m *Model) commitDepartment(f *form) (tea.Model, tea.Cmd) {
	alias := strings.TrimSpace(f.fields[fieldDeptAlias].value)
	name := strings.TrimSpace(f.fields[fieldDeptName].value)

	dept, err := m.store.CreateDepartment(alias, name)
	if err != nil {
		if quit := m.formError(f, err); quit != nil {
			return m, quit
		}
		return m, nil
	}

	m.closeForm()
	m.say(fmt.Sprintf("Created %s.", dept))
	m.logInfo("created department %s (%s)", alias, dept.Name())
	m.statusMsg = fmt.Sprintf("Department %q saved.", alias)
	return m, nil
}

func (m *Model) commitEmployee(f *form) (tea.Model, tea.Cmd) {
	hired, err := roster.ParseDate(f.fields[fieldEmpHired].value)
	if err != nil {
		f.errLine = err.Error()
		return m, nil
	}

	deptAlias := strings.TrimSpace(f.fields[fieldEmpDept].value)
	dept, ok := m.store.DepartmentByAlias(deptAlias)
	if !ok {
		f.errLine = fmt.Sprintf("No department with alias %q. Try \"list departments\".", deptAlias)
		return m, nil
	}

	alias := strings.TrimSpace(f.fields[fieldEmpAlias].value)
	person, err := m.store.CreatePerson(alias, roster.PersonSpec{
		First:      f.fields[fieldEmpFirst].value,
		Middle:     f.fields[fieldEmpMiddle].value,
		Last:       f.fields[fieldEmpLast].value,
		HiredOn:    hired,
		Department: dept.ID(),
	})
	if err != nil {
		if quit := m.formError(f, err); quit != nil {
			return m, quit
		}
		return m, nil
	}

	m.closeForm()
	m.say(fmt.Sprintf("Enrolled %s in %s, hired %s.", person.Name(), dept.Name(), person.HiredOn()))
	m.logInfo("enrolled %s (%s) in %s", alias, person.Name(), dept.Name())
	m.statusMsg = fmt.Sprintf("Employee %q saved.", alias)
	return m, nil
}

// formError keeps recoverable failures inside the form so the user can fix
// the offending field. Corruption still tears the session down.
func (m *Model) formError(f *form, err error) tea.Cmd {
	if roster.IsCorruption(err) {
		return m.reportError(err)
	}
	f.errLine = err.Error()
	m.logWarn("%v", err)
	return nil
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = modePrompt
	m.input.Placeholder = promptPlaceholder
}

func (m *Model) abandonForm() {
	title := "Form"
	if m.form != nil {
		title = m.form.title
	}
	m.closeForm()
	m.statusMsg = title + " abandoned."
}
