package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pliablepixels/zmng/internal/client/models"
	"github.com/pliablepixels/zmng/internal/common"
)

func (a *App) listProfiles(ctx context.Context) {
	list, err := a.profiles.List(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(list) == 0 {
		fmt.Println("No profiles saved. Use 'add-profile' to create one.")
		return
	}
	for _, p := range list {
		fmt.Printf("  %-20s %s\n", p.Name, p.PortalURL)
	}
}

func (a *App) addProfile(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Profile name", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	portal, err := GetSimpleText(a.reader, "Portal URL (e.g. https://demo.example)", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	apiBase, err := GetSimpleText(a.reader, "API base URL (e.g. https://demo.example/zm/api)", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cgiBase, err := GetSimpleText(a.reader, "CGI base URL (e.g. https://demo.example/zm/cgi-bin)", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	username, err := GetSimpleText(a.reader, "Username (empty for none)", os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var password string
	if username != "" {
		pw, err := GetPassword(os.Stdout)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		password = string(pw)
		common.WipeByteArray(pw)
	}

	p := &models.Profile{
		Name:       name,
		PortalURL:  portal,
		APIBaseURL: apiBase,
		CGIBaseURL: cgiBase,
		Username:   username,
		Password:   password,
	}
	if err := a.profiles.Save(ctx, p); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Saved profile %q\n", name)
}

func (a *App) removeProfile(ctx context.Context, name string) {
	if err := a.profiles.Delete(ctx, name); err != nil {
		fmt.Println("error:", err)
		return
	}
	if a.profile != nil && a.profile.Name == name {
		a.Teardown()
	}
	fmt.Printf("Removed profile %q\n", name)
}

func (a *App) useProfile(ctx context.Context, name string) {
	if err := a.Use(ctx, name); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Printf("No profile named %q\n", name)
			return
		}
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Using profile %q (%s)\n", name, a.profile.APIBaseURL)
}
