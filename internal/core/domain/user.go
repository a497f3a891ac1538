package domain

// DefaultUsername is shown for accounts that never set a display name.
const DefaultUsername = "Anonymous"

// User is the signed-in account as the client knows it.
type User struct {
	ID          string
	Email       string
	Username    string
	Description string
	// Password is only kept locally for re-authentication; the server never needs it after login.
	Password string
}

// Aggregate is a user together with all of their goals.
type Aggregate struct {
	User  User
	Goals []Goal
}

// FindGoal returns the goal with the given id.
func (a Aggregate) FindGoal(id string) (Goal, bool) {
	if id == "" {
		return Goal{}, false
	}
	for _, g := range a.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// WithGoal returns a copy of the aggregate where the goal sharing g's id is replaced by g.
// The receiver is left untouched.
func (a Aggregate) WithGoal(g Goal) Aggregate {
	goals := make([]Goal, len(a.Goals))
	for i, existing := range a.Goals {
		if existing.ID == g.ID && g.ID != "" {
			goals[i] = g
			continue
		}
		goals[i] = existing
	}
	return Aggregate{User: a.User, Goals: goals}
}

// WithUser returns a copy of the aggregate carrying u.
func (a Aggregate) WithUser(u User) Aggregate {
	goals := make([]Goal, len(a.Goals))
	copy(goals, a.Goals)
	return Aggregate{User: u, Goals: goals}
}
