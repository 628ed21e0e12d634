package model

// Dataset holds the ordered rows shown by the list. A row's index is its
// position in Users.
type Dataset struct {
	Users []User `json:"users"`
}

// NewDataset creates an empty Dataset with an initialized slice.
func NewDataset() *Dataset {
	return &Dataset{Users: []User{}}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Users)
}

// At returns the row at index. The caller guarantees 0 <= index < Len().
func (d *Dataset) At(index int) User {
	return d.Users[index]
}

// IndexOf returns the row index of the user with id, or -1.
func (d *Dataset) IndexOf(id string) int {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return i
		}
	}
	return -1
}

// ImportMerge appends users whose ID is not present yet.
// Returns the number added and skipped.
func (d *Dataset) ImportMerge(users []User) (added, skipped int) {
	seen := make(map[string]bool, len(d.Users))
	for _, u := range d.Users {
		seen[u.ID] = true
	}
	for _, u := range users {
		if u.ID == "" || seen[u.ID] {
			skipped++
			continue
		}
		seen[u.ID] = true
		d.Users = append(d.Users, u)
		added++
	}
	return added, skipped
}
