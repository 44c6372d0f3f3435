package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmDelete asks the user to confirm deleting the named order. Only an
// explicit "y"/"yes" counts as affirmation; everything else (including EOF)
// declines.
func ConfirmDelete(in io.Reader, out io.Writer, orderNumber string) bool {
	fmt.Fprintf(out, "Delete purchase order %s? [y/N]: ", orderNumber)

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
