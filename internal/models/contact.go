package models

// Contact represents a single entry in a user's contact list.
// Every contact belongs to exactly one owner; the owner id never
// crosses the wire, it is always derived from the verified token.
type Contact struct {
	ID        int64  `json:"id"`
	OwnerID   int64  `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	JobTitle  string `json:"jobTitle"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ContactRequest is the body of POST /contacts and PUT /contacts/{id}.
// All fields are required; updates replace every field.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	JobTitle  string `json:"jobTitle"`
}
