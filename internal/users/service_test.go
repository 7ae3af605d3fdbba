package users

import (
	"context"
	"testing"

	"github.com/google/uuid"

	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
)

// Guard checks that fire before any storage access run against a service
// whose repository is never reached.
func newGuardService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(nil))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestUpdateRoleRejectsSelfChange(t *testing.T) {
	svc := newGuardService(t)
	actor := uuid.New()

	_, err := svc.UpdateRole(context.Background(), actor, actor, "ADMIN")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("err = %v, want forbidden", err)
	}
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	svc := newGuardService(t)

	_, err := svc.UpdateRole(context.Background(), uuid.New(), uuid.New(), "WAREHOUSE")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestDeactivateRejectsSelf(t *testing.T) {
	svc := newGuardService(t)
	actor := uuid.New()

	_, err := svc.Deactivate(context.Background(), actor, actor)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("err = %v, want forbidden", err)
	}
}
