package db

import (
	"gorm.io/gorm"
	"travel-planner-server/model"
)

// MembershipDAO manages the many-to-many association between users and
// travels. Traversal is always an explicit query, never a struct field read.
type MembershipDAO struct {
	db *gorm.DB
}

func NewMembershipDAO(db *gorm.DB) *MembershipDAO {
	return &MembershipDAO{db: db}
}

func (membershipDAO *MembershipDAO) ListMembers(travelID int) ([]model.User, error) {
	var travel model.Travel
	result := membershipDAO.db.First(&travel, travelID)
	if result.Error != nil {
		return nil, result.Error
	}

	users := make([]model.User, 0)
	err := membershipDAO.db.Model(&travel).Association("Users").Find(&users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// AddMembers adds the given users to the travel. Ids without a matching user
// are silently ignored; re-adding a member is a no-op, the association append
// upserts the join rows.
func (membershipDAO *MembershipDAO) AddMembers(travelID int, userIDs []int) (model.Travel, error) {
	var travel model.Travel
	result := membershipDAO.db.First(&travel, travelID)
	if result.Error != nil {
		return model.Travel{}, result.Error
	}

	var users []model.User
	result = membershipDAO.db.Where("id IN ?", userIDs).Find(&users)
	if result.Error != nil {
		return model.Travel{}, result.Error
	}

	if len(users) > 0 {
		err := membershipDAO.db.Model(&travel).Association("Users").Append(&users)
		if err != nil {
			return model.Travel{}, err
		}
	}

	// reload with the member list
	var updated model.Travel
	result = membershipDAO.db.Preload("Users").First(&updated, travelID)
	return updated, result.Error
}

func (membershipDAO *MembershipDAO) RemoveMember(travelID, userID int) error {
	var travel model.Travel
	result := membershipDAO.db.Preload("Users").First(&travel, travelID)
	if result.Error != nil {
		return result.Error
	}

	var member *model.User
	for i := range travel.Users {
		if travel.Users[i].ID == userID {
			member = &travel.Users[i]
			break
		}
	}
	if member == nil {
		return gorm.ErrRecordNotFound
	}

	return membershipDAO.db.Model(&travel).Association("Users").Delete(member)
}
