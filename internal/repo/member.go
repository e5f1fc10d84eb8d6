package repo

import (
	"kanban-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepo struct {
	db *gorm.DB
}

type MemberRepoInterface interface {
	Create(member *models.BoardMember) error
	ListByBoard(boardID uuid.UUID) ([]models.BoardMember, error)
	UpdateRole(boardID, userID uuid.UUID, role models.MemberRole) (*models.BoardMember, error)
	Delete(boardID, userID uuid.UUID) error
}

func NewMemberRepository(db *gorm.DB) MemberRepoInterface {
	return &MemberRepo{db: db}
}

func (r *MemberRepo) Create(member *models.BoardMember) error {
	var board models.Board
	if err := r.db.First(&board, "id = ?", member.BoardID).Error; err != nil {
		return firstOrNotFound(err, "Board")
	}
	var user models.User
	if err := r.db.First(&user, "id = ?", member.UserID).Error; err != nil {
		return firstOrNotFound(err, "User")
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(member).Error
	})
}

func (r *MemberRepo) ListByBoard(boardID uuid.UUID) ([]models.BoardMember, error) {
	var members []models.BoardMember
	err := r.db.Where("board_id = ?", boardID).Find(&members).Error
	return members, err
}

func (r *MemberRepo) UpdateRole(boardID, userID uuid.UUID, role models.MemberRole) (*models.BoardMember, error) {
	var member models.BoardMember
	err := r.db.First(&member, "board_id = ? AND user_id = ?", boardID, userID).Error
	if err != nil {
		return nil, firstOrNotFound(err, "Board member")
	}
	err = r.db.Model(&models.BoardMember{}).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Update("role", role).Error
	if err != nil {
		return nil, err
	}
	member.Role = role
	return &member, nil
}

func (r *MemberRepo) Delete(boardID, userID uuid.UUID) error {
	return r.db.Where("board_id = ? AND user_id = ?", boardID, userID).
		Delete(&models.BoardMember{}).Error
}
