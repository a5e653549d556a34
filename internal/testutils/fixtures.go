package testutils

import (
	"taskboard/models"

	"github.com/google/uuid"
)

func CreateTestUser(username string) *models.User {
	return &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhashnotarealhashnot",
	}
}

func CreateTestTask(ownerID, title string) *models.Task {
	return &models.Task{
		ID:      uuid.New().String(),
		Title:   title,
		OwnerID: ownerID,
	}
}
