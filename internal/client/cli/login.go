package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pliablepixels/zmng/internal/common"
)

func (a *App) login(ctx context.Context) {
	if !a.isConnected() {
		fmt.Println("Select a profile first: use <name>")
		return
	}

	username := a.profile.Username
	password := a.profile.Password

	// Profiles without stored credentials prompt interactively.
	if username == "" {
		var err error
		username, err = GetSimpleText(a.reader, "Username", os.Stdout)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		pw, err := GetPassword(os.Stdout)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		password = string(pw)
		common.WipeByteArray(pw)
	}

	if _, err := a.hostSvc.Login(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Println("Login failed: invalid credentials")
			return
		}
		fmt.Println("Login failed:", err)
		return
	}
	fmt.Println("Login successful")
}

func (a *App) logout(ctx context.Context) {
	if !a.isConnected() {
		return
	}
	if err := a.hostSvc.Logout(ctx); err != nil {
		fmt.Println("Logout reported:", err)
	}
	a.Teardown()
	fmt.Println("Logged out")
}

func (a *App) version(ctx context.Context) {
	if !a.isConnected() {
		fmt.Println("Select a profile first: use <name>")
		return
	}
	v, err := a.hostSvc.Version(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Server %s (API %s)\n", v.Version, v.APIVersion)
}
