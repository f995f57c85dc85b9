package domain

// Session is the identity of the user logged in the running client.
// Role and UserID are meaningless while Token is empty.
type Session struct {
	Token  string
	Role   Role
	UserID *int64
}

func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}
