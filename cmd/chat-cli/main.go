package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"lawchat-backend/client"
	"lawchat-backend/model"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorCyan   = "\033[36m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

func main() {
	baseURL := flag.String("url", client.DefaultBaseURL, "backend base URL")
	sessionID := flag.String("session", "", "session id to resume")
	flag.Parse()

	api := client.New(*baseURL)
	state := client.NewChatState(api)
	ctx := context.Background()

	if *sessionID != "" {
		state.LoadSession(ctx, *sessionID)
		if state.Err() != "" {
			fmt.Fprintln(os.Stderr, "error:", state.Err())
			os.Exit(1)
		}
		for _, m := range state.Messages() {
			printMessage(m)
		}
	} else {
		id := state.CreateSession(ctx, "")
		if id == "" {
			fmt.Fprintln(os.Stderr, "error:", state.Err())
			os.Exit(1)
		}
		fmt.Printf("%sStarted session %s%s\n", colorGray, id, colorReset)
	}

	fmt.Printf("%sCommands: /sessions, /open <id>, /new, /quit%s\n", colorGray, colorReset)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Printf("%syou> %s", colorGreen, colorReset)
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if quit := runCommand(ctx, api, state, input); quit {
				return
			}
			continue
		}

		session := state.Session()
		if session == nil {
			fmt.Println("no active session, use /new")
			continue
		}

		state.SendMessage(ctx, input, session.ID)
		msgs := state.Messages()
		if len(msgs) > 0 {
			printMessage(msgs[len(msgs)-1])
		}
		if state.Err() != "" {
			fmt.Printf("%s(%s)%s\n", colorYellow, state.Err(), colorReset)
		}
	}
}

func runCommand(ctx context.Context, api *client.Client, state *client.ChatState, input string) (quit bool) {
	fields := strings.Fields(input)

	switch fields[0] {
	case "/quit", "/exit":
		return true

	case "/new":
		if id := state.CreateSession(ctx, ""); id != "" {
			fmt.Printf("%sStarted session %s%s\n", colorGray, id, colorReset)
		} else {
			fmt.Println("error:", state.Err())
		}

	case "/open":
		if len(fields) < 2 {
			fmt.Println("usage: /open <session-id>")
			return false
		}
		state.LoadSession(ctx, fields[1])
		if state.Err() != "" {
			fmt.Println("error:", state.Err())
			return false
		}
		for _, m := range state.Messages() {
			printMessage(m)
		}

	case "/sessions":
		sessions, err := api.ListSessions(ctx)
		if err != nil {
			fmt.Println("error:", err)
			return false
		}
		for _, s := range sessions {
			fmt.Printf("%s  %s\n", s.ID, s.Title)
		}

	default:
		fmt.Println("unknown command:", fields[0])
	}

	return false
}

func printMessage(m client.ChatMessage) {
	switch m.Role {
	case model.RoleAssistant:
		fmt.Printf("%sassistant>%s %s\n", colorCyan, colorReset, m.Content)
	default:
		fmt.Printf("%syou>%s %s\n", colorGreen, colorReset, m.Content)
	}
}
