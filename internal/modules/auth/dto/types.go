package dto

type UserOutput struct {
	ID    string
	Name  string
	Email string
}

// SessionStatus describes the stored login from the client's point of view.
type SessionStatus struct {
	LoggedIn bool
	Expired  bool
	User     UserOutput
}
