package cli

import (
	"context"
	"fmt"
	"time"
)

// AuditLogs lists the audit trail for one day, today by default. Browsing a
// day also starts its background poll, superseding the previous one.
func (a *App) AuditLogs(ctx context.Context, args []string) error {
	date := time.Now()
	if len(args) > 0 {
		parsed, err := time.Parse("2006-01-02", args[0])
		if err != nil {
			fmt.Fprintln(a.out, "Usage: auditlogs [YYYY-MM-DD]")
			return err
		}
		date = parsed
	}

	list, err := a.auditLogs.List(ctx, date)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	for _, l := range list {
		fmt.Fprintf(a.out, "%s  %s  %s\n", l.Timestamp.Format(time.RFC3339), l.PerformedBy.EmployeeAccount.Name, l.ActionDescription)
	}
	fmt.Fprintf(a.out, "%d audit entries on %s\n", len(list), date.Format("2006-01-02"))

	a.poller.Start(ctx, a.auditLogs.ListResource(date))
	return nil
}
