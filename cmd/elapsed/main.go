// Command elapsed formats timestamps, describes their age and keeps the
// elapsed-time markers of static HTML pages up to date.
//
// Usage:
//
//	elapsed format --pattern "h:mmTT, d MMMM yyyy" 1709647629
//	elapsed humanize 1709647500
//	elapsed --locale es render index.html --out index.html --watch
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app := newApp()
	defer app.close()

	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		msg := err.Error()
		if !strings.HasPrefix(msg, "elapsed: ") {
			msg = "elapsed: " + msg
		}
		fmt.Fprintln(stderr, msg)
		return 1
	}
	return 0
}
