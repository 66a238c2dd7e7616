package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"chatbot-server/internal/store"

	"github.com/fatih/color"
)

var (
	serverURL = flag.String("server", "http://localhost:3000", "Chatbot API base URL")
	userID    = flag.String("user", "cli-user", "User id the conversation belongs to")
	title     = flag.String("title", "", "Conversation title")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\nShutting down...")
		cancel()
		os.Exit(0)
	}()

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Println(boldGreen("Chatbot terminal client"))
	fmt.Printf("Server: %s, user: %s\n", boldCyan(*serverURL), boldCyan(*userID))
	fmt.Println("Type a message and press Enter. /regen regenerates the last reply, /history prints the conversation, exit quits.")
	fmt.Println()

	client := newAPIClient(*serverURL)
	s := session{}
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(boldGreen("You: "))
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch {
		case input == "":
			continue
		case strings.ToLower(input) == "exit":
			return
		case input == "/history":
			if !s.started() {
				fmt.Println(yellow("No conversation yet."))
				continue
			}
			messages, err := client.history(ctx, s.conversationID)
			if err != nil {
				fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))
				continue
			}
			for _, m := range messages {
				printMessage(m, boldGreen, boldCyan)
			}
			fmt.Println()
			continue
		case input == "/regen":
			if s.lastAssistantID == 0 {
				fmt.Println(yellow("Nothing to regenerate yet."))
				continue
			}
			result, err := client.regenerate(ctx, s.lastAssistantID)
			if err != nil {
				fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))
				continue
			}
			s.lastAssistantID = result.NewMessage.ID
			fmt.Println(boldCyan("Assistant: ") + result.NewMessage.Content)
			fmt.Println()
			continue
		}

		reply, err := s.send(ctx, client, *userID, *title, input)
		if err != nil {
			fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))
			continue
		}
		fmt.Println(boldCyan("Assistant: ") + reply)
		fmt.Println()
	}
}

// session tracks the conversation the client is writing to
type session struct {
	conversationID  int64
	lastAssistantID int64
}

func (s *session) started() bool {
	return s.conversationID != 0
}

// send creates the conversation on the first line and appends to it afterwards
func (s *session) send(ctx context.Context, client *apiClient, userID, title, content string) (string, error) {
	if !s.started() {
		result, err := client.createConversation(ctx, userID, title, content)
		if err != nil {
			return "", err
		}
		s.conversationID = result.Conversation.ID
		for _, m := range result.Messages {
			if m.Role == store.MessageRoleAssistant {
				s.lastAssistantID = m.ID
				return m.Content, nil
			}
		}
		return "", nil
	}

	result, err := client.sendMessage(ctx, s.conversationID, content)
	if err != nil {
		return "", err
	}
	s.lastAssistantID = result.AssistantMessage.ID
	return result.AssistantMessage.Content, nil
}

func printMessage(m store.Message, user, assistant func(a ...interface{}) string) {
	switch m.Role {
	case store.MessageRoleUser:
		fmt.Println(user("You: ") + m.Content)
	case store.MessageRoleAssistant:
		label := "Assistant: "
		if m.RegeneratedFrom != nil {
			label = fmt.Sprintf("Assistant (regenerated from #%d): ", *m.RegeneratedFrom)
		}
		fmt.Println(assistant(label) + m.Content)
	default:
		fmt.Println(m.Role + ": " + m.Content)
	}
}
