package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) status() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s) ", u.Name)
	}
	return ""
}

// Root starts the interactive loop over stdin.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "OHNS back-office CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin), a.out)
}
