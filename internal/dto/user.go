package dto

type CreateUserRequest struct {
	Name      string  `json:"name" validate:"required"`
	Email     *string `json:"email" validate:"omitempty,email"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name" validate:"omitempty"`
	Email     *string `json:"email" validate:"omitempty,email"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}
