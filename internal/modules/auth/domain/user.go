package domain

type User struct {
	ID    string
	Name  string
	Email string
}

// Credentials is the locally stored login state: the bearer token plus the
// user it was issued to. It is the client-side analogue of a browser's
// token + user storage pair.
type Credentials struct {
	Token string
	User  User
}
