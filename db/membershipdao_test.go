package db

import (
	"errors"
	"gorm.io/gorm"
	"testing"
	"travel-planner-server/model"
)

func TestListMembersOfMissingTravel(t *testing.T) {
	setupTestDB(t)
	membershipDAO := NewMembershipDAO(GetDB())

	_, err := membershipDAO.ListMembers(999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestListMembersEmpty(t *testing.T) {
	setupTestDB(t)
	travel := seedTravel(t, "Andes Trip")

	users, err := NewMembershipDAO(GetDB()).ListMembers(travel.ID)
	if err != nil {
		t.Fatalf("failed to list members: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("got %d members, want none", len(users))
	}
}

func TestAddMembers(t *testing.T) {
	setupTestDB(t)
	travel := seedTravel(t, "Andes Trip")
	ana := seedUser(t, "Ana", "ana@x.com")
	luis := seedUser(t, "Luis", "luis@x.com")

	membershipDAO := NewMembershipDAO(GetDB())
	updated, err := membershipDAO.AddMembers(travel.ID, []int{ana.ID, luis.ID})
	if err != nil {
		t.Fatalf("failed to add members: %v", err)
	}
	if len(updated.Users) != 2 {
		t.Errorf("travel has %d members, want 2", len(updated.Users))
	}
}

func TestAddMembersIgnoresUnknownIds(t *testing.T) {
	setupTestDB(t)
	travel := seedTravel(t, "Andes Trip")
	ana := seedUser(t, "Ana", "ana@x.com")

	updated, err := NewMembershipDAO(GetDB()).AddMembers(travel.ID, []int{ana.ID, 999})
	if err != nil {
		t.Fatalf("failed to add members: %v", err)
	}
	if len(updated.Users) != 1 || updated.Users[0].ID != ana.ID {
		t.Errorf("got members %+v, want only Ana", updated.Users)
	}
}

func TestAddMembersIsIdempotent(t *testing.T) {
	setupTestDB(t)
	travel := seedTravel(t, "Andes Trip")
	ana := seedUser(t, "Ana", "ana@x.com")

	membershipDAO := NewMembershipDAO(GetDB())
	_, err := membershipDAO.AddMembers(travel.ID, []int{ana.ID})
	if err != nil {
		t.Fatalf("failed to add member: %v", err)
	}
	updated, err := membershipDAO.AddMembers(travel.ID, []int{ana.ID})
	if err != nil {
		t.Fatalf("failed to re-add member: %v", err)
	}
	if len(updated.Users) != 1 {
		t.Errorf("travel has %d members after a double add, want 1", len(updated.Users))
	}

	var count int64
	err = GetDB().Table("users_travels").Count(&count).Error
	if err != nil {
		t.Fatalf("failed to count join rows: %v", err)
	}
	if count != 1 {
		t.Errorf("join table has %d rows, want 1", count)
	}
}

func TestAddMembersToMissingTravel(t *testing.T) {
	setupTestDB(t)
	ana := seedUser(t, "Ana", "ana@x.com")

	_, err := NewMembershipDAO(GetDB()).AddMembers(999, []int{ana.ID})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRemoveMember(t *testing.T) {
	setupTestDB(t)
	travel := seedTravel(t, "Andes Trip")
	ana := seedUser(t, "Ana", "ana@x.com")

	membershipDAO := NewMembershipDAO(GetDB())
	_, err := membershipDAO.AddMembers(travel.ID, []int{ana.ID})
	if err != nil {
		t.Fatalf("failed to add member: %v", err)
	}

	err = membershipDAO.RemoveMember(travel.ID, ana.ID)
	if err != nil {
		t.Fatalf("failed to remove member: %v", err)
	}

	users, err := membershipDAO.ListMembers(travel.ID)
	if err != nil {
		t.Fatalf("failed to list members: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("got %d members after removal, want none", len(users))
	}

	// the user itself must survive the membership removal
	_, err = NewRepository[model.User](GetDB()).GetById(ana.ID)
	if err != nil {
		t.Errorf("user deleted with the membership: %v", err)
	}
}

func TestRemoveMemberNotAMember(t *testing.T) {
	setupTestDB(t)
	travel := seedTravel(t, "Andes Trip")
	ana := seedUser(t, "Ana", "ana@x.com")

	err := NewMembershipDAO(GetDB()).RemoveMember(travel.ID, ana.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRemoveMemberFromMissingTravel(t *testing.T) {
	setupTestDB(t)

	err := NewMembershipDAO(GetDB()).RemoveMember(999, 1)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}
