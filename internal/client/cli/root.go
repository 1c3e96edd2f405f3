package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.profile == nil {
		return ""
	}
	s := a.profile.Name
	if a.profile.Username != "" {
		s = a.profile.Username + "@" + s
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to the zmng shell (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("zmng %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isConnected() {
				fmt.Println("Available commands: login, version, monitors, events, snapshot, logout, profiles, exit")
			} else {
				fmt.Println("Available commands: profiles, add-profile, rm-profile, use, exit")
			}
		case "profiles":
			a.listProfiles(ctx)
		case "add-profile":
			a.addProfile(ctx)
		case "rm-profile":
			if len(args) == 0 {
				fmt.Println("Usage: rm-profile <name>")
				continue
			}
			a.removeProfile(ctx, args[0])
		case "use":
			if len(args) == 0 {
				fmt.Println("Usage: use <name>")
				continue
			}
			a.useProfile(ctx, args[0])
		case "login":
			a.login(ctx)
		case "version":
			a.version(ctx)
		case "monitors":
			a.listMonitors(ctx)
		case "events":
			a.listEvents(ctx, args)
		case "snapshot":
			if len(args) == 0 {
				fmt.Println("Usage: snapshot <monitor-id>")
				continue
			}
			a.snapshot(ctx, args[0])
		case "logout":
			a.logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
