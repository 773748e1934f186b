package entity

// ContactInfo is the slice of the user vertical this service reads: just
// enough to address a delivery note. User CRUD and authentication live
// elsewhere.
type ContactInfo struct {
	FullName string `db:"full_name"`
	Address  string `db:"address"`
	Phone    string `db:"phone"`
}
