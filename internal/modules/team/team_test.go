package team

import (
	"errors"
	"testing"

	"github.com/genesis-zm/genesis-core/internal/models"
	"github.com/genesis-zm/genesis-core/internal/pkg/apperr"
	"github.com/genesis-zm/genesis-core/internal/testutil"
)

func TestCreateRequiresNameAndRole(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	if _, err := svc.Create(&CreateMemberDTO{Role: "Engineer"}); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("missing name: expected validation error, got %v", err)
	}
	if _, err := svc.Create(&CreateMemberDTO{Name: "Chanda"}); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("missing role: expected validation error, got %v", err)
	}

	var count int64
	db.Model(&models.TeamMemberModel{}).Count(&count)
	if count != 0 {
		t.Errorf("invalid creates must not write rows, found %d", count)
	}
}

func TestListInsertionOrder(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	for _, name := range []string{"Chanda", "Mwila", "Bwalya"} {
		if _, err := svc.Create(&CreateMemberDTO{Name: name, Role: "Member"}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	members, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("got %d members, want 3", len(members))
	}
	for i, want := range []string{"Chanda", "Mwila", "Bwalya"} {
		if members[i].Name != want {
			t.Errorf("members[%d].Name = %q, want %q", i, members[i].Name, want)
		}
	}
}

func TestUpdatePartialFields(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	member, err := svc.Create(&CreateMemberDTO{Name: "Chanda", Role: "Engineer", Bio: "builds things"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newRole := "Lead Engineer"
	updated, err := svc.Update(member.ID, &UpdateMemberDTO{Role: &newRole})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != "Lead Engineer" {
		t.Errorf("role = %q, want %q", updated.Role, "Lead Engineer")
	}

	got, err := svc.Get(member.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Chanda" || got.Bio != "builds things" {
		t.Errorf("untouched fields changed: name=%q bio=%q", got.Name, got.Bio)
	}
}

func TestUpdateRejectsEmptyName(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	member, err := svc.Create(&CreateMemberDTO{Name: "Chanda", Role: "Engineer"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	empty := "  "
	if _, err := svc.Update(member.ID, &UpdateMemberDTO{Name: &empty}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	if _, err := svc.Create(&CreateMemberDTO{Name: "Chanda", Role: "Engineer"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(9999); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}

	var count int64
	db.Model(&models.TeamMemberModel{}).Count(&count)
	if count != 1 {
		t.Errorf("delete of unknown id changed row count: %d", count)
	}
}
