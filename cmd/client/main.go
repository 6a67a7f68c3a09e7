// Package main is the interactive terminal client for the slides
// service: account login, the create/input/calibrate/generate flow, and
// a deck viewer with preview and edit modes.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/client/api"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/client/deck"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/slides"
)

var (
	version   string
	buildDate string
)

// repl runs the interactive shell loop for managing presentations.
func repl(client *api.Client) {
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Print("slides> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, signup, login, create, list, input <id>, tone <id> <tone>, verbosity <id> <0-4>, generate <id>, open <id>, delete <id>, download <id>, exit")
		case "signup":
			name := promptLine(scanner, "Name: ")
			email := promptLine(scanner, "Email: ")
			password := promptLine(scanner, "Password: ")
			if err := client.Signup(ctx, name, email, password); err != nil {
				fmt.Println("Signup failed:", err)
			} else {
				fmt.Println("Account created, now log in")
			}
		case "login":
			email := promptLine(scanner, "Email: ")
			password := promptLine(scanner, "Password: ")
			if err := client.Login(ctx, email, password); err != nil {
				fmt.Println("Login failed:", err)
			} else {
				fmt.Println("Logged in")
			}
		case "create":
			id, err := client.CreatePresentation(ctx)
			if err != nil {
				fmt.Println("Create failed:", err)
				continue
			}
			fmt.Println("Created presentation", id)
		case "list":
			list, err := client.GetAll(ctx)
			if err != nil {
				fmt.Println("List failed:", err)
				continue
			}
			if len(list) == 0 {
				fmt.Println("No presentations yet")
				continue
			}
			for _, p := range list {
				status := "draft"
				if p.GeneratedContent != nil {
					status = "generated"
				}
				fmt.Printf("%s  %s  created %s\n", p.ID, status, p.CreatedAt.Format("2006-01-02 15:04"))
			}
		case "input":
			if len(args) < 2 {
				fmt.Println("Usage: input <id>")
				continue
			}
			content := promptLine(scanner, "Content: ")
			instructions := promptLine(scanner, "Instructions: ")
			countStr := promptLine(scanner, "Slide count (empty for default): ")
			count := 0
			if countStr != "" {
				n, err := strconv.Atoi(countStr)
				if err != nil || n <= 0 {
					fmt.Println("Slide count must be a positive number")
					continue
				}
				count = n
			}
			if err := client.SaveInput(ctx, args[1], content, instructions, count); err != nil {
				fmt.Println("Input failed:", err)
			} else {
				fmt.Println("Input saved")
			}
		case "tone":
			if len(args) < 3 {
				fmt.Println("Usage: tone <id> <tone>")
				continue
			}
			if err := client.SetTone(ctx, args[1], strings.Join(args[2:], " ")); err != nil {
				fmt.Println("Tone failed:", err)
			} else {
				fmt.Println("Tone saved")
			}
		case "verbosity":
			if len(args) < 3 {
				fmt.Println("Usage: verbosity <id> <0-4>")
				continue
			}
			level, err := strconv.Atoi(args[2])
			if err != nil {
				fmt.Println("Verbosity must be a number between 0 and 4")
				continue
			}
			if err := client.SetVerbosity(ctx, args[1], level); err != nil {
				fmt.Println("Verbosity failed:", err)
			} else {
				fmt.Println("Verbosity saved")
			}
		case "generate":
			if len(args) < 2 {
				fmt.Println("Usage: generate <id>")
				continue
			}
			fmt.Println("Generating slides...")
			if err := client.Generate(ctx, args[1]); err != nil {
				fmt.Println("Generation failed:", err)
			} else {
				fmt.Println("Slides generated, use 'open", args[1]+"' to view them")
			}
		case "open":
			if len(args) < 2 {
				fmt.Println("Usage: open <id>")
				continue
			}
			openDeck(ctx, scanner, client, args[1])
		case "delete":
			if len(args) < 2 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			if err := client.Delete(ctx, args[1]); err != nil {
				fmt.Println("Delete failed:", err)
			} else {
				fmt.Println("Presentation deleted")
			}
		case "download":
			fmt.Println("Export to PPTX/PDF is not available yet")
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// openDeck fetches the presentation, parses its deck, and runs the
// viewer subloop until the user closes it.
func openDeck(ctx context.Context, scanner *bufio.Scanner, client *api.Client, id string) {
	p, err := client.Get(ctx, id)
	if err != nil {
		fmt.Println("Open failed:", err)
		return
	}
	raw := ""
	if p.GeneratedContent != nil {
		raw = *p.GeneratedContent
	}
	d, err := slides.ParseDeck(raw)
	if err != nil {
		if errors.Is(err, slides.ErrNoContent) {
			fmt.Println("No slides generated yet, run 'generate", id+"' first")
		} else {
			fmt.Println("Stored slides are unreadable:", err)
		}
		return
	}

	session, err := deck.NewSession(id, d, client)
	if err != nil {
		fmt.Println("Open failed:", err)
		return
	}
	printGrid(session)

	for {
		fmt.Printf("deck[%s]> ", session.Mode())
		if !scanner.Scan() {
			return
		}
		args := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Commands: grid, preview <n>, edit <n>, next, prev, esc, title <text>, line <n> <text>, add <text>, save, close")
		case "grid":
			session.Close()
			printGrid(session)
		case "preview":
			n, ok := parseIndex(args)
			if !ok {
				fmt.Println("Usage: preview <n>")
				continue
			}
			if err := session.EnterPreview(n - 1); err != nil {
				fmt.Println(err)
				continue
			}
			printSlide(session)
		case "edit":
			n, ok := parseIndex(args)
			if !ok {
				fmt.Println("Usage: edit <n>")
				continue
			}
			if err := session.EnterEdit(n - 1); err != nil {
				fmt.Println(err)
				continue
			}
			printSlide(session)
		case "next":
			session.HandleKey(deck.KeyForward)
			printSlide(session)
		case "prev":
			session.HandleKey(deck.KeyBackward)
			printSlide(session)
		case "esc":
			session.HandleKey(deck.KeyCancel)
			printGrid(session)
		case "title":
			if len(args) < 2 {
				fmt.Println("Usage: title <text>")
				continue
			}
			if err := session.SetTitle(strings.Join(args[1:], " ")); err != nil {
				fmt.Println(err)
			}
		case "line":
			if len(args) < 3 {
				fmt.Println("Usage: line <n> <text>")
				continue
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("Usage: line <n> <text>")
				continue
			}
			if err := session.SetContentLine(n-1, strings.Join(args[2:], " ")); err != nil {
				fmt.Println(err)
			}
		case "add":
			if len(args) < 2 {
				fmt.Println("Usage: add <text>")
				continue
			}
			if err := session.AddContentLine(strings.Join(args[1:], " ")); err != nil {
				fmt.Println(err)
			}
		case "save":
			if err := session.Save(ctx); err != nil {
				fmt.Println("Save failed:", err)
			} else {
				fmt.Println("Deck saved")
			}
		case "close":
			if session.Dirty() {
				fmt.Println("Unsaved edits discarded")
			}
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func parseIndex(args []string) (int, bool) {
	if len(args) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func printGrid(s *deck.Session) {
	for i, sl := range s.Deck().Slides {
		marker := " "
		if sl.IsMajor() {
			marker = "*"
		}
		fmt.Printf("%2d %s %s (%s)\n", i+1, marker, sl.Heading(), sl.EffectiveLayout())
	}
}

func printSlide(s *deck.Session) {
	sl := s.ActiveSlide()
	fmt.Printf("--- slide %d/%d [%s] ---\n", s.Active()+1, len(s.Deck().Slides), sl.EffectiveLayout())
	fmt.Println(sl.Heading())
	for _, line := range sl.Content {
		fmt.Println("  -", line)
	}
	if sl.Visuals != "" {
		fmt.Println("  visuals:", sl.Visuals)
	}
}

func promptLine(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// main parses flags and starts the interactive shell.
func main() {
	var (
		baseURL string
		showVer bool
	)

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("Slides Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	client := api.New(baseURL)
	fmt.Println("Type 'help' for a list of commands.")
	repl(client)
}
