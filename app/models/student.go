package models

import "time"

// Student is the rendering context for fee and result documents.
type Student struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	InstituteID string     `json:"institute_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name        string     `json:"name" gorm:"not null" validate:"required"`
	Class       string     `json:"class" gorm:"not null" validate:"required"`
	Section     string     `json:"section,omitempty"`
	RollNo      string     `json:"roll_no,omitempty"`
	FatherName  string     `json:"father_name,omitempty"`
	MotherName  string     `json:"mother_name,omitempty"`
	DOB         *time.Time `json:"dob,omitempty" gorm:"type:date"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Institute *Institute `json:"institute,omitempty" gorm:"foreignKey:InstituteID;references:ID"`
}

// ClassLabel combines class and section the way they appear on documents,
// e.g. "VI - B". Section may be empty.
func (s *Student) ClassLabel() string {
	if s.Section == "" {
		return s.Class
	}
	return s.Class + " - " + s.Section
}
