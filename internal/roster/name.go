package roster

import (
	"fmt"
	"strings"
)

// Name identifies a person. Middle is optional and never participates in
// ordering.
type Name struct {
	First  string
	Middle string
	Last   string
}

// Compare orders names by last name, then first name, both lexicographic.
// Two names with the same last and first compare equal even when their
// middle names differ.
func (n Name) Compare(other Name) int {
	if c := strings.Compare(n.Last, other.Last); c != 0 {
		return c
	}
	return strings.Compare(n.First, other.First)
}

// String renders "Last, First" or "Last, First Middle".
func (n Name) String() string {
	if n.Middle == "" {
		return fmt.Sprintf("%s, %s", n.Last, n.First)
	}
	return fmt.Sprintf("%s, %s %s", n.Last, n.First, n.Middle)
}
