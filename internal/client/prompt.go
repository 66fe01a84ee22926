package client

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptCredentials asks for an email and a password on w and reads the
// answers from scanner.
func PromptCredentials(scanner *bufio.Scanner, w io.Writer) (email, password string) {
	fmt.Fprint(w, "Email: ")
	scanner.Scan()
	email = strings.TrimSpace(scanner.Text())

	fmt.Fprint(w, "Password: ")
	scanner.Scan()
	password = scanner.Text()

	return email, password
}
