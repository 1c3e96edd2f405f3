package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a *App) listEvents(ctx context.Context, args []string) {
	if !a.isConnected() {
		fmt.Println("Select a profile first: use <name>")
		return
	}

	monitorID := ""
	page := 1
	if len(args) > 0 {
		monitorID = args[0]
	}
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			page = n
		}
	}

	events, pagination, err := a.eventSvc.List(ctx, monitorID, page)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(events) == 0 {
		fmt.Println("No events")
		return
	}

	fmt.Printf("  %-8s %-4s %-24s %-20s %s\n", "ID", "MON", "NAME", "START", "CAUSE")
	for _, e := range events {
		fmt.Printf("  %-8s %-4s %-24s %-20s %s\n",
			e.Event.ID, e.Event.MonitorID, e.Event.Name, e.Event.StartTime, e.Event.Cause)
	}
	if pagination != nil {
		fmt.Printf("Page %d of %d (%d events)\n", pagination.Page, pagination.PageCount, pagination.Count)
	}
}
