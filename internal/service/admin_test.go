package service

import (
	"fmt"
	"testing"

	"faqbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestAdminService_IsAdmin(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockReturn    bool
		mockError     error
		expectedAdmin bool
		expectedError bool
	}{
		{
			name:          "admin user",
			userID:        498613988,
			mockReturn:    true,
			expectedAdmin: true,
		},
		{
			name:          "regular user",
			userID:        123,
			mockReturn:    false,
			expectedAdmin: false,
		},
		{
			name:          "database error",
			userID:        123,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockAdminRepository)
			mockRepo.On("IsAdmin", tt.userID).Return(tt.mockReturn, tt.mockError)

			service := NewAdminService(mockRepo)

			admin, err := service.IsAdmin(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAdmin, admin)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAdminService_EnsureAdmin(t *testing.T) {
	mockRepo := new(testutil.MockAdminRepository)
	mockRepo.On("Add", int64(498613988)).Return(nil)

	service := NewAdminService(mockRepo)

	err := service.EnsureAdmin(498613988)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAdminService_EnsureAdmin_Error(t *testing.T) {
	mockRepo := new(testutil.MockAdminRepository)
	mockRepo.On("Add", int64(498613988)).Return(fmt.Errorf("db error"))

	service := NewAdminService(mockRepo)

	err := service.EnsureAdmin(498613988)

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
