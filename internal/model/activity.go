package model

// User is a CRM user that owns reports.
type User struct {
	ID    string
	Name  string
	Email string
}

// ProjectRef is a project touched in a report window, with the contact and
// firm names as they are at the moment of reading.
type ProjectRef struct {
	ID          string
	Name        string
	ContactID   string
	ContactName string
	FirmID      string
	FirmName    string
}
