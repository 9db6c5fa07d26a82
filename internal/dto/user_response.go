package dto

// UserResponse is the caller-visible shape of a user. The password hash is
// never part of any response.
type UserResponse struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func ToUserResponse(user interface {
	GetUserID() string
	GetEmail() string
	GetName() string
}) UserResponse {
	return UserResponse{
		UserID: user.GetUserID(),
		Email:  user.GetEmail(),
		Name:   user.GetName(),
	}
}
