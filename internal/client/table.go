package client

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/Dan9191/contact-service/internal/models"
)

// SortColumn selects which column the contact table is ordered by
type SortColumn string

const (
	SortByName  SortColumn = "name"
	SortByEmail SortColumn = "email"
)

// SortContacts orders the slice in place by the chosen column,
// case-insensitively. The server returns contacts unordered, so this is
// the only ordering the user ever sees.
func SortContacts(contacts []models.Contact, col SortColumn, asc bool) {
	key := func(c models.Contact) string {
		if col == SortByEmail {
			return strings.ToLower(c.Email)
		}
		return strings.ToLower(c.FirstName + " " + c.LastName)
	}
	sort.SliceStable(contacts, func(i, j int) bool {
		if asc {
			return key(contacts[i]) < key(contacts[j])
		}
		return key(contacts[i]) > key(contacts[j])
	})
}

// TotalPages returns how many pages of size perPage the list occupies.
// An empty list still has one (empty) page.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := (total + perPage - 1) / perPage
	if pages == 0 {
		return 1
	}
	return pages
}

// Paginate returns the 1-based page of size perPage over the full set.
// Out-of-range pages are clamped to the nearest valid page.
func Paginate(contacts []models.Contact, page, perPage int) []models.Contact {
	if perPage <= 0 {
		return contacts
	}
	if page < 1 {
		page = 1
	}
	if max := TotalPages(len(contacts), perPage); page > max {
		page = max
	}
	start := (page - 1) * perPage
	if start >= len(contacts) {
		return []models.Contact{}
	}
	end := start + perPage
	if end > len(contacts) {
		end = len(contacts)
	}
	return contacts[start:end]
}

// RenderTable writes the contacts as an aligned text table
func RenderTable(w io.Writer, contacts []models.Contact) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tCOMPANY\tJOB TITLE")
	for _, c := range contacts {
		fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%s\t%s\n",
			c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Company, c.JobTitle)
	}
	tw.Flush()
}
