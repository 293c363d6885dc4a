package shell

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcwhitley/rosterbook/internal/roster"
)

// commandKind enumerates what the prompt understands. Dispatch is one
// switch in runCommand; the catalog below only feeds help output.
type commandKind int

const (
	cmdUnknown commandKind = iota
	cmdHelp
	cmdNewEmployee
	cmdNewDepartment
	cmdListEmployees
	cmdListDepartments
	cmdShow
	cmdTransfer
	cmdQuit
)

// command is one parsed prompt line. Keyword matching is case-insensitive;
// args keep their case because aliases are case-sensitive.
type command struct {
	kind commandKind
	args []string
}

// commandInfo describes one command for help output.
type commandInfo struct {
	usage   string
	summary string
	detail  string
	topics  []string
}

var commandCatalog = []commandInfo{
	{
		usage:   "help [command]",
		summary: "List commands, or show details for one",
		detail:  "Without an argument, lists every command. With one, prints the full description of the commands matching that word.",
		topics:  []string{"help"},
	},
	{
		usage:   "new employee",
		summary: "Open the employee form",
		detail:  "Opens a numbered-field form for a new employee. Alias, first name, last name, date of hire and department are required; the hire date starts out filled with today. At least one department must exist first.",
		topics:  []string{"new", "employee"},
	},
	{
		usage:   "new department",
		summary: "Open the department form",
		detail:  "Opens a numbered-field form for a new department. Both the unique identifier and the full name are required.",
		topics:  []string{"new", "department"},
	},
	{
		usage:   "list departments",
		summary: "Show every department and its headcount",
		detail:  "Prints a table of all departments ordered by alias, with their numeric ids, full names and headcounts.",
		topics:  []string{"list", "departments", "department"},
	},
	{
		usage:   "list employees",
		summary: "Show every employee",
		detail:  "Prints a table of all employees ordered by last name then first name, with their aliases, departments and hire dates.",
		topics:  []string{"list", "employees", "employee"},
	},
	{
		usage:   "show EMPLOYEE",
		summary: "Show one employee with assignment history",
		detail:  "Prints an employee's full record: name, date of hire, current department and every department they have passed through with its effective date.",
		topics:  []string{"show"},
	},
	{
		usage:   "transfer EMPLOYEE DEPARTMENT [MM/DD/YYYY]",
		summary: "Move an employee to another department",
		detail:  "Moves the employee with the given alias into the given department, effective on the date if one is supplied and today otherwise. The move is refused if the employee is already there.",
		topics:  []string{"transfer"},
	},
	{
		usage:   "quit",
		summary: "Leave rosterbook",
		detail:  "Ends the session. The roster lives in memory only, so nothing is kept.",
		topics:  []string{"quit", "exit"},
	},
}

// parseCommand splits a prompt line into a command. A bare "new" or "list"
// parses as a help request for that keyword so the user sees the variants.
func parseCommand(line string) command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{kind: cmdUnknown}
	}
	keyword := strings.ToLower(fields[0])
	rest := fields[1:]

	switch keyword {
	case "help":
		return command{kind: cmdHelp, args: rest}
	case "quit", "exit":
		return command{kind: cmdQuit}
	case "show":
		return command{kind: cmdShow, args: rest}
	case "transfer":
		return command{kind: cmdTransfer, args: rest}
	case "new":
		if len(rest) == 1 {
			switch strings.ToLower(rest[0]) {
			case "employee":
				return command{kind: cmdNewEmployee}
			case "department":
				return command{kind: cmdNewDepartment}
			}
		}
		if len(rest) == 0 {
			return command{kind: cmdHelp, args: []string{"new"}}
		}
	case "list":
		if len(rest) == 1 {
			switch strings.ToLower(rest[0]) {
			case "employees":
				return command{kind: cmdListEmployees}
			case "departments":
				return command{kind: cmdListDepartments}
			}
		}
		if len(rest) == 0 {
			return command{kind: cmdHelp, args: []string{"list"}}
		}
	}
	return command{kind: cmdUnknown}
}

// runCommand executes one prompt line.
func (m *Model) runCommand(line string) (tea.Model, tea.Cmd) {
	if line == "" {
		return m, nil
	}
	m.say("> " + line)
	slog.Debug("prompt line", "line", line)

	cmd := parseCommand(line)
	switch cmd.kind {

	case cmdHelp:
		m.say(helpLines(cmd.args)...)
		m.statusMsg = "Ready."

	case cmdQuit:
		m.logInfo("session closed")
		return m, tea.Quit

	case cmdNewEmployee:
		if m.store.DepartmentCount() == 0 {
			m.statusMsg = "Cannot add employee: No departments found."
			m.say(m.statusMsg)
			return m, nil
		}
		m.form = newEmployeeForm()
		m.mode = modeEmployeeForm
		m.statusMsg = formHint

	case cmdNewDepartment:
		m.form = newDepartmentForm()
		m.mode = modeDepartmentForm
		m.statusMsg = formHint

	case cmdListDepartments:
		m.say(m.departmentTable()...)
		m.statusMsg = fmt.Sprintf("%d departments.", m.store.DepartmentCount())

	case cmdListEmployees:
		m.say(m.employeeTable()...)
		m.statusMsg = fmt.Sprintf("%d employees.", m.store.EmployeeCount())

	case cmdShow:
		m.runShow(cmd.args)

	case cmdTransfer:
		if quit := m.runTransfer(cmd.args); quit != nil {
			return m, quit
		}

	default:
		m.say("Type HELP for a list of commands.")
		m.statusMsg = "Unknown command."
	}
	return m, nil
}

// helpLines renders the command catalog, either the one-line index or the
// detailed entries matching a topic word.
func helpLines(args []string) []string {
	if len(args) == 0 {
		lines := []string{"Commands:"}
		for _, info := range commandCatalog {
			lines = append(lines, fmt.Sprintf("  %-44s %s", info.usage, info.summary))
		}
		lines = append(lines, "", `Type "help COMMAND" for details on one command.`)
		return lines
	}

	topic := strings.ToLower(args[0])
	var lines []string
	for _, info := range commandCatalog {
		if !slices.Contains(info.topics, topic) {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, info.usage, "  "+info.detail)
	}
	if len(lines) == 0 {
		return []string{fmt.Sprintf("No help for %q. Type HELP for a list of commands.", args[0])}
	}
	return lines
}

// runShow prints one employee's record and assignment history.
func (m *Model) runShow(args []string) {
	if len(args) != 1 {
		m.say("Usage: show EMPLOYEE")
		return
	}
	alias := args[0]
	person, ok := m.store.PersonByAlias(alias)
	if !ok {
		m.statusMsg = fmt.Sprintf("No employee with alias %q.", alias)
		m.say(m.statusMsg)
		return
	}
	m.say(fmt.Sprintf("%s, DOH: %s, %s", person.Name(), person.HiredOn(), m.departmentName(person.Department())))
	m.say("History:")
	for _, a := range person.History() {
		m.say(fmt.Sprintf("  %s, %s", m.departmentName(a.Department), a.EffectiveOn))
	}
	m.statusMsg = fmt.Sprintf("Showing %s.", alias)
}

// runTransfer moves an employee between departments. A missing date means
// the move takes effect today; the store fills that in.
func (m *Model) runTransfer(args []string) tea.Cmd {
	if len(args) < 2 || len(args) > 3 {
		m.say("Usage: transfer EMPLOYEE DEPARTMENT [MM/DD/YYYY]")
		return nil
	}
	personAlias, deptAlias := args[0], args[1]

	var on roster.Date
	if len(args) == 3 {
		parsed, err := roster.ParseDate(args[2])
		if err != nil {
			m.statusMsg = err.Error()
			m.say(err.Error())
			return nil
		}
		on = parsed
	}

	if err := m.store.TransferPerson(personAlias, deptAlias, on); err != nil {
		return m.reportError(err)
	}

	person, _ := m.store.PersonByAlias(personAlias)
	dept, _ := m.store.DepartmentByAlias(deptAlias)
	history := person.History()
	effective := history[len(history)-1].EffectiveOn

	m.say(fmt.Sprintf("Transferred %s to %s effective %s.", person.Name(), dept.Name(), effective))
	m.logInfo("transferred %s to %s effective %s", personAlias, dept.Name(), effective)
	m.statusMsg = "Transfer recorded."
	return nil
}
