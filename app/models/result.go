package models

import (
	"database/sql/driver"
	"encoding/json"
	"strconv"
	"time"
)

// MarkValue carries an obtained mark as entered by staff. The value may be a
// plain number or an additive expression like "80+18" where the terms sum to
// the obtained mark (split-marks authoring convenience). It is kept verbatim
// so the entry grid can re-display exactly what was typed.
type MarkValue string

// UnmarshalJSON accepts a JSON number, a string, or null.
func (m *MarkValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = MarkValue(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*m = MarkValue(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

func (m MarkValue) String() string { return string(m) }

// MarksEntry is one subject row of a student's result.
type MarksEntry struct {
	Subject   string    `json:"subject" validate:"required"`
	Theory    MarkValue `json:"theory"`
	Practical MarkValue `json:"practical"`
	Grade     string    `json:"grade,omitempty"`
}

// MarksList is stored as a jsonb column.
type MarksList []MarksEntry

func (l MarksList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *MarksList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// CalculatedStats is derived once at save time and persisted; views never
// recompute it.
type CalculatedStats struct {
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
	Grade      string  `json:"grade"`
}

func (s CalculatedStats) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *CalculatedStats) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// StudentResult stores a student's marks for an exam blueprint.
type StudentResult struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	BlueprintID string          `json:"blueprint_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID   string          `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Marks       MarksList       `json:"marks_data" gorm:"type:jsonb"`
	Stats       CalculatedStats `json:"calculated_stats" gorm:"type:jsonb"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty" gorm:"index"`

	Blueprint *ExamBlueprint `json:"blueprint,omitempty" gorm:"foreignKey:BlueprintID;references:ID"`
	Student   *Student       `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
