// Package export renders contact lists as downloadable documents.
package export

import (
	"strconv"

	"github.com/Dan9191/contact-service/internal/models"
	"github.com/beevik/etree"
)

// ContactsXML builds an XML document containing every contact in the slice.
// The element names mirror the JSON wire fields.
func ContactsXML(contacts []models.Contact) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("contacts")
	root.CreateAttr("count", strconv.Itoa(len(contacts)))

	for _, c := range contacts {
		e := root.CreateElement("contact")
		e.CreateAttr("id", strconv.FormatInt(c.ID, 10))
		e.CreateElement("firstName").SetText(c.FirstName)
		e.CreateElement("lastName").SetText(c.LastName)
		e.CreateElement("email").SetText(c.Email)
		e.CreateElement("phone").SetText(c.Phone)
		e.CreateElement("company").SetText(c.Company)
		e.CreateElement("jobTitle").SetText(c.JobTitle)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
