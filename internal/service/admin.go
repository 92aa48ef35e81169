package service

import (
	"fmt"

	"faqbot/internal/repository"
)

// AdminService handles admin identity checks and seeding
type AdminService struct {
	adminRepo repository.AdminRepository
}

// NewAdminService creates a new admin service
func NewAdminService(adminRepo repository.AdminRepository) *AdminService {
	return &AdminService{adminRepo: adminRepo}
}

// IsAdmin checks whether the user may enter the admin flow
func (s *AdminService) IsAdmin(userID int64) (bool, error) {
	return s.adminRepo.IsAdmin(userID)
}

// EnsureAdmin seeds an admin identity. Safe to call on every startup.
func (s *AdminService) EnsureAdmin(userID int64) error {
	if err := s.adminRepo.Add(userID); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	return nil
}
