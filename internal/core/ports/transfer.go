package ports

// Wire shapes of the remote API. They mirror the JSON exactly and are kept apart
// from the domain types so the contract is not coupled to client-side changes.

// CredentialsRequest is the body of both /register and /login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId,omitempty"`
}

type LoginResponse struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	Username    string `json:"username,omitempty"`
	Description string `json:"description,omitempty"`
}

type StepPayload struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

type GoalResponse struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Steps     []StepPayload `json:"steps"`
	Status    string        `json:"status,omitempty"`
	CreatedAt string        `json:"createdAt,omitempty"`
	UpdatedAt string        `json:"updatedAt,omitempty"`
}

type UserDataResponse struct {
	UserID      string         `json:"userId"`
	Email       string         `json:"email"`
	Username    string         `json:"username"`
	Description string         `json:"description"`
	Goals       []GoalResponse `json:"goals"`
}

type GoalRequest struct {
	ID     string        `json:"id,omitempty"`
	Title  string        `json:"title"`
	Steps  []StepPayload `json:"steps"`
	Status string        `json:"status,omitempty"`
}

type GoalStatusRequest struct {
	Status string `json:"status"`
}

// UpdateProfileRequest always carries the description; an empty one clears it.
type UpdateProfileRequest struct {
	UserID      string  `json:"userId,omitempty"`
	Username    string  `json:"username"`
	Description *string `json:"description"`
}

type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

// AckResponse is the generic confirmation body.
type AckResponse struct {
	Message string `json:"message"`
}
