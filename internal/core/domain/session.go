package domain

// Keys used in the local session store.
const (
	FieldUserID      = "userId"
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldDescription = "description"
	FieldPassword    = "userPassword"
	FieldLoggedIn    = "isLoggedIn"
)

// SessionFields lists every key the client ever writes.
var SessionFields = []string{
	FieldUserID,
	FieldUsername,
	FieldEmail,
	FieldDescription,
	FieldPassword,
	FieldLoggedIn,
}

// Session is the typed view over the persisted key-value session.
type Session struct {
	UserID      string
	Username    string
	Email       string
	Description string
	Password    string
	LoggedIn    bool
}

// SessionFromUser builds a logged-in session for u.
func SessionFromUser(u User) Session {
	return Session{
		UserID:      u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Description: u.Description,
		Password:    u.Password,
		LoggedIn:    true,
	}
}

// LoadSession reads a session through get, which reports absence with ok=false.
func LoadSession(get func(field string) (string, bool)) Session {
	value := func(f string) string {
		v, _ := get(f)
		return v
	}
	return Session{
		UserID:      value(FieldUserID),
		Username:    value(FieldUsername),
		Email:       value(FieldEmail),
		Description: value(FieldDescription),
		Password:    value(FieldPassword),
		LoggedIn:    value(FieldLoggedIn) == "true",
	}
}

// Empty reports whether no identity is stored at all.
func (s Session) Empty() bool {
	return s.UserID == "" && s.Email == "" && s.Username == ""
}

// Complete reports whether id, email and username are all present.
func (s Session) Complete() bool {
	return s.UserID != "" && s.Email != "" && s.Username != ""
}

// User returns the identity held by the session.
func (s Session) User() User {
	return User{
		ID:          s.UserID,
		Email:       s.Email,
		Username:    s.Username,
		Description: s.Description,
		Password:    s.Password,
	}
}

// Fields flattens the session into the store representation.
func (s Session) Fields() map[string]string {
	loggedIn := "false"
	if s.LoggedIn {
		loggedIn = "true"
	}
	return map[string]string{
		FieldUserID:      s.UserID,
		FieldUsername:    s.Username,
		FieldEmail:       s.Email,
		FieldDescription: s.Description,
		FieldPassword:    s.Password,
		FieldLoggedIn:    loggedIn,
	}
}

// IdentityFields is the subset refreshed after a profile fetch; password and login flag are kept.
func (s Session) IdentityFields() map[string]string {
	return map[string]string{
		FieldUserID:      s.UserID,
		FieldUsername:    s.Username,
		FieldEmail:       s.Email,
		FieldDescription: s.Description,
	}
}
