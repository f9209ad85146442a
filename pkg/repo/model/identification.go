package model

import "gorm.io/datatypes"

// Identification records one successful salt match: the solution
// composition that was analyzed and the formula it resolved to.
type Identification struct {
	BaseModel
	Formula    string         `gorm:"not null;index" json:"formula"`
	Cation     string         `json:"cation"`
	Anion      string         `json:"anion"`
	Components datatypes.JSON `json:"components"`
}
