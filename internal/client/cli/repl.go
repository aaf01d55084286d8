package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Airports(ctx context.Context) error
	AddAirport(ctx context.Context) error
	RideOptions(ctx context.Context) error
	AddRideOption(ctx context.Context) error
	Bookings(ctx context.Context) error
	AuditLogs(ctx context.Context, args []string) error
	Employees(ctx context.Context) error
	AddEmployee(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "ohns %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: whoami, airports, addairport, rideoptions, addrideoption, bookings, auditlogs [YYYY-MM-DD], employees, addemployee, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "airports":
			_ = a.Airports(ctx)

		case "addairport":
			_ = a.AddAirport(ctx)

		case "rideoptions":
			_ = a.RideOptions(ctx)

		case "addrideoption":
			_ = a.AddRideOption(ctx)

		case "bookings":
			_ = a.Bookings(ctx)

		case "auditlogs":
			_ = a.AuditLogs(ctx, args)

		case "employees":
			_ = a.Employees(ctx)

		case "addemployee":
			_ = a.AddEmployee(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
