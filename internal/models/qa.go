package models

import "time"

// QAEntryModel is a question on the public Q&A board. Entries are created
// unanswered; answering sets Answer, DateAnswered and IsAnswered together in a
// single update, and an answered entry is never re-answered.
type QAEntryModel struct {
	Base
	Username     string     `json:"username"      gorm:"not null"`
	Question     string     `json:"question"      gorm:"type:text;not null"`
	Answer       *string    `json:"answer"        gorm:"type:text"`
	DateAsked    time.Time  `json:"date_asked"    gorm:"index;not null"`
	DateAnswered *time.Time `json:"date_answered" gorm:"index"`
	IsAnswered   bool       `json:"is_answered"   gorm:"not null;default:false;index"`
}

func (QAEntryModel) TableName() string { return "qa_entries" }
