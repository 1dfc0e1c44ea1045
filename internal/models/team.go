package models

// TeamMemberModel is one entry on the public team roster.
type TeamMemberModel struct {
	Base
	Name  string `json:"name"  gorm:"not null"`
	Role  string `json:"role"  gorm:"not null"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

func (TeamMemberModel) TableName() string { return "team_members" }
