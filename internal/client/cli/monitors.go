package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pliablepixels/zmng/internal/filex"
)

func (a *App) listMonitors(ctx context.Context) {
	if !a.isConnected() {
		fmt.Println("Select a profile first: use <name>")
		return
	}

	monitors, err := a.monitorSvc.List(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(monitors) == 0 {
		fmt.Println("No monitors defined on this server")
		return
	}

	fmt.Printf("  %-4s %-20s %-10s %-8s %s\n", "ID", "NAME", "FUNCTION", "ENABLED", "STATUS")
	for _, m := range monitors {
		fmt.Printf("  %-4s %-20s %-10s %-8s %s\n",
			m.Monitor.ID, m.Monitor.Name, m.Monitor.Function, m.Monitor.Enabled, m.Status.Status)
	}
}

func (a *App) snapshot(ctx context.Context, monitorID string) {
	if !a.isConnected() {
		fmt.Println("Select a profile first: use <name>")
		return
	}

	blob, err := a.monitorSvc.Snapshot(ctx, monitorID)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dir, err := filex.EnsureSubDir("snapshots")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ext := "bin"
	if strings.HasPrefix(blob.ContentType, "image/") {
		ext = strings.TrimPrefix(blob.ContentType, "image/")
	}
	path := filepath.Join(dir, fmt.Sprintf("monitor-%s.%s", monitorID, ext))

	if err := os.WriteFile(path, blob.Bytes, 0o660); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Snapshot written to %s (%d bytes, %s)\n", path, len(blob.Bytes), blob.ContentType)
}
