package handler

type credentialsRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type stepRequest struct {
	Title  string `json:"title"  validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=pending completed"`
}

type goalRequest struct {
	Title string        `json:"title" validate:"required"`
	Steps []stepRequest `json:"steps" validate:"dive"`
}

type goalStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed"`
}

type profileRequest struct {
	Username    string  `json:"username"    validate:"required,max=64"`
	Description *string `json:"description"`
}

type descriptionRequest struct {
	Description string `json:"description"`
}
