package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The password
// digest is never copied.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		FullName:    user.FullName(),
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Gender:      user.Gender,
		Role:        user.Status.String(),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func UsersToResponse(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToResponse(&users[i]))
	}
	return responses
}

// UsersByID indexes users for joining loose references.
func UsersByID(users []entity.User) map[uint]*entity.User {
	byID := make(map[uint]*entity.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	return byID
}
