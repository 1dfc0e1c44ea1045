package models

// TerminalFileModel is a virtual file exposed through the simulated terminal.
// `ls` lists filenames, `cat <name>` prints the description.
type TerminalFileModel struct {
	Base
	Filename    string `json:"filename"    gorm:"uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text;not null"`
}

func (TerminalFileModel) TableName() string { return "terminal_files" }
