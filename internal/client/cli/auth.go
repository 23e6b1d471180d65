package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Dan9191/contact-service/internal/client"
)

// register prompts for credentials, validates them the way the signup form
// would, and creates the account. Registration doubles as login: the
// returned token becomes the active session.
func (a *App) register(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err := client.ValidateEmail(email); err != nil {
		fmt.Println("Error:", err)
		return
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	confirmation, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err := client.ValidatePassword(password, confirmation); err != nil {
		fmt.Println("Error:", err)
		return
	}

	token, err := a.api.Register(ctx, email, password)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	a.startSession(token)
	fmt.Println("Registered and logged in as", email)
}

func (a *App) login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	a.startSession(token)
	fmt.Println("Logged in as", email)
}

// logout only discards the locally held token; the token itself stays
// valid until it expires.
func (a *App) logout() {
	a.session = nil
	if err := a.store.Clear(); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Logged out")
}

func (a *App) startSession(token string) {
	session, err := client.NewSession(token)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	a.session = session
	a.page = 1
	if err := a.store.Save(session); err != nil {
		fmt.Println("Warning: failed to persist session:", err)
	}
}
