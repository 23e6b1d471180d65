// Package cli implements the interactive terminal client for the contact
// service.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Dan9191/contact-service/internal/client"
)

const defaultPageSize = 10

type App struct {
	api     *client.Client
	store   *client.SessionStore
	session *client.Session
	reader  *bufio.Reader

	sortCol client.SortColumn
	sortAsc bool
	page    int
	perPage int
}

func NewApp(serverAddr, sessionPath string) *App {
	return &App{
		api:     client.NewClient(serverAddr),
		store:   client.NewSessionStore(sessionPath),
		reader:  bufio.NewReader(os.Stdin),
		sortCol: client.SortByName,
		sortAsc: true,
		page:    1,
		perPage: defaultPageSize,
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Valid()
}

// requireSession gates every authenticated command. An expired session is
// cleared up front so the user is told to log in again instead of watching
// the next request fail.
func (a *App) requireSession() bool {
	if a.session != nil && !a.session.Valid() {
		fmt.Println("Session expired, please log in again")
		a.session = nil
		_ = a.store.Clear()
		return false
	}
	if a.session == nil {
		fmt.Println("Please log in first")
		return false
	}
	return true
}

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return "(logged in)"
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to Contact Service CLI (type 'help' for commands)")

	// Pick up a previously saved session; stale ones are dropped silently.
	if s, err := a.store.Load(); err == nil && s.Valid() {
		a.session = s
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("contacts %s> ", a.getStatus())
		if !scanner.Scan() {
			return
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
				fmt.Println("Available commands: list, sort name|email, next, prev, add, edit <id>, delete <id>, export [file], logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout()
		case "list":
			a.list(ctx)
		case "sort":
			a.setSort(ctx, args)
		case "next":
			a.page++
			a.list(ctx)
		case "prev":
			if a.page > 1 {
				a.page--
			}
			a.list(ctx)
		case "add":
			a.addContact(ctx)
		case "edit":
			a.editContact(ctx, args)
		case "delete":
			a.deleteContact(ctx, args)
		case "export":
			a.export(ctx, args)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) setSort(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: sort name|email")
		return
	}
	col := client.SortColumn(args[0])
	if col != client.SortByName && col != client.SortByEmail {
		fmt.Println("Usage: sort name|email")
		return
	}
	// Re-sorting the same column toggles the direction.
	if col == a.sortCol {
		a.sortAsc = !a.sortAsc
	} else {
		a.sortCol = col
		a.sortAsc = true
	}
	a.page = 1
	a.list(ctx)
}

func (a *App) list(ctx context.Context) {
	if !a.requireSession() {
		return
	}

	contacts, err := a.api.ListContacts(ctx, a.session.Token)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	client.SortContacts(contacts, a.sortCol, a.sortAsc)
	pages := client.TotalPages(len(contacts), a.perPage)
	if a.page > pages {
		a.page = pages
	}
	page := client.Paginate(contacts, a.page, a.perPage)

	var buf bytes.Buffer
	client.RenderTable(&buf, page)
	fmt.Print(buf.String())

	dir := "asc"
	if !a.sortAsc {
		dir = "desc"
	}
	fmt.Printf("Page %d/%d (%d contacts, sorted by %s %s)\n",
		a.page, pages, len(contacts), a.sortCol, dir)
}

func (a *App) export(ctx context.Context, args []string) {
	if !a.requireSession() {
		return
	}

	out, err := a.api.ExportContacts(ctx, a.session.Token)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	path := "contacts.xml"
	if len(args) > 0 {
		path = args[0]
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Exported to", path)
}
