package shell

import "testing"

func TestParseCommand(t *testing.T) {
	cases := []struct {
		line string
		kind commandKind
		args int
	}{
		{"help", cmdHelp, 0},
		{"HELP transfer", cmdHelp, 1},
		{"new employee", cmdNewEmployee, 0},
		{"New Department", cmdNewDepartment, 0},
		{"list employees", cmdListEmployees, 0},
		{"LIST DEPARTMENTS", cmdListDepartments, 0},
		{"transfer sally sales", cmdTransfer, 2},
		{"transfer sally sales 06/01/2021", cmdTransfer, 3},
		{"show sally", cmdShow, 1},
		{"quit", cmdQuit, 0},
		{"exit", cmdQuit, 0},
		{"new", cmdHelp, 1},
		{"list", cmdHelp, 1},
		{"new manager", cmdUnknown, 0},
		{"list rooms", cmdUnknown, 0},
		{"dance", cmdUnknown, 0},
		{"   ", cmdUnknown, 0},
	}
	for _, tc := range cases {
		got := parseCommand(tc.line)
		if got.kind != tc.kind {
			t.Errorf("parseCommand(%q) kind = %d, want %d", tc.line, got.kind, tc.kind)
		}
		if len(got.args) != tc.args {
			t.Errorf("parseCommand(%q) args = %v, want %d of them", tc.line, got.args, tc.args)
		}
	}
}

func TestParseCommandKeepsArgumentCase(t *testing.T) {
	got := parseCommand("transfer Sally SALES")
	if got.args[0] != "Sally" || got.args[1] != "SALES" {
		t.Fatalf("args = %v, aliases must keep their case", got.args)
	}
}
