package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if auth := a.store.Auth(); auth.IsAuthenticated && auth.User != nil {
		s = auth.User.Username
	}
	if a.dark {
		if s != "" {
			s += " "
		}
		s += "dark"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to SkillUp CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		a.printf("skillup %s> ", a.getStatus())
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
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: courses, show <n>, open <key>, fav <n>, favs, theme, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, courses, show <n>, open <key>, theme, exit")
			}
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "courses":
			a.courses(ctx)
		case "show":
			a.show(args)
		case "open":
			a.open(ctx, args)
		case "fav":
			a.fav(ctx, args)
		case "favs":
			a.favs()
		case "theme":
			a.theme(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
