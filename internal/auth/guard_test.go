package auth

import (
	"errors"
	"testing"
)

func TestCanChangeRole(t *testing.T) {
	tests := []struct {
		name       string
		current    []string
		proposed   string
		adminCount int
		wantErr    error
	}{
		{"sole admin demoted", []string{RoleAdmin}, RoleStaff, 1, ErrLastAdmin},
		{"sole admin keeps admin", []string{RoleAdmin}, RoleAdmin, 1, nil},
		{"one of two admins demoted", []string{RoleAdmin}, RoleStaff, 2, nil},
		{"staff promoted", []string{RoleStaff}, RoleAdmin, 1, nil},
		{"staff stays staff", []string{RoleStaff}, RoleStaff, 1, nil},
		{"user with no roles", nil, RoleStaff, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanChangeRole(tt.current, tt.proposed, tt.adminCount)
			if !errors.Is(err, tt.wantErr) && (err != nil || tt.wantErr != nil) {
				t.Errorf("CanChangeRole(%v, %q, %d) = %v, want %v",
					tt.current, tt.proposed, tt.adminCount, err, tt.wantErr)
			}
		})
	}
}

func TestCanDeleteUser(t *testing.T) {
	if err := CanDeleteUser([]string{RoleAdmin}, 1); !errors.Is(err, ErrLastAdmin) {
		t.Errorf("expected ErrLastAdmin, got %v", err)
	}
	if err := CanDeleteUser([]string{RoleAdmin}, 2); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := CanDeleteUser([]string{RoleStaff}, 1); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
