package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Dan9191/contact-service/internal/client"
	"github.com/Dan9191/contact-service/internal/models"
)

// promptField asks for one value; when editing, the current value is shown
// and kept if the user just presses Enter.
func (a *App) promptField(label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	val, err := getSimpleText(a.reader, label, os.Stdout)
	if err != nil {
		return "", err
	}
	if val == "" {
		return current, nil
	}
	return val, nil
}

// promptContact collects all contact fields and validates them before
// anything is sent to the server.
func (a *App) promptContact(defaults *models.ContactRequest) (models.ContactRequest, error) {
	var cur models.ContactRequest
	if defaults != nil {
		cur = *defaults
	}

	var req models.ContactRequest
	var err error
	if req.FirstName, err = a.promptField("First name", cur.FirstName); err != nil {
		return req, err
	}
	if req.LastName, err = a.promptField("Last name", cur.LastName); err != nil {
		return req, err
	}
	if req.Email, err = a.promptField("Email", cur.Email); err != nil {
		return req, err
	}
	if req.Phone, err = a.promptField("Phone (10 digits)", cur.Phone); err != nil {
		return req, err
	}
	if req.Company, err = a.promptField("Company", cur.Company); err != nil {
		return req, err
	}
	if req.JobTitle, err = a.promptField("Job title", cur.JobTitle); err != nil {
		return req, err
	}

	return req, client.ValidateContact(req)
}

func (a *App) addContact(ctx context.Context) {
	if !a.requireSession() {
		return
	}

	req, err := a.promptContact(nil)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	contact, err := a.api.CreateContact(ctx, a.session.Token, req)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Contact %d added\n", contact.ID)
}

func (a *App) editContact(ctx context.Context, args []string) {
	if !a.requireSession() {
		return
	}

	id, ok := parseID(args, "edit")
	if !ok {
		return
	}

	// Fetch the current values so the prompts can offer them as defaults.
	contacts, err := a.api.ListContacts(ctx, a.session.Token)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	var defaults *models.ContactRequest
	for _, c := range contacts {
		if c.ID == id {
			defaults = &models.ContactRequest{
				FirstName: c.FirstName, LastName: c.LastName, Email: c.Email,
				Phone: c.Phone, Company: c.Company, JobTitle: c.JobTitle,
			}
			break
		}
	}
	if defaults == nil {
		fmt.Println("Contact not found")
		return
	}

	req, err := a.promptContact(defaults)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if _, err := a.api.UpdateContact(ctx, a.session.Token, id, req); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Contact %d updated\n", id)
}

func (a *App) deleteContact(ctx context.Context, args []string) {
	if !a.requireSession() {
		return
	}

	id, ok := parseID(args, "delete")
	if !ok {
		return
	}

	if err := a.api.DeleteContact(ctx, a.session.Token, id); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Contact %d deleted\n", id)
}

func parseID(args []string, cmd string) (int64, bool) {
	if len(args) == 0 {
		fmt.Printf("Usage: %s <id>\n", cmd)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Invalid id:", args[0])
		return 0, false
	}
	return id, true
}
