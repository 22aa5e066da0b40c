package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SubjectBlueprint describes one subject row of an exam template.
type SubjectBlueprint struct {
	Name         string  `json:"name" validate:"required"`
	MaxTheory    float64 `json:"max_theory" validate:"gte=0"`
	MaxPractical float64 `json:"max_practical" validate:"gte=0"`
	PassingMarks float64 `json:"passing_marks" validate:"gte=0"`
}

// GradingRule maps a percentage band to a letter grade. Bands are matched
// highest-min first; a gap in the table yields no grade.
type GradingRule struct {
	Grade string  `json:"grade" validate:"required"`
	Min   float64 `json:"min" validate:"gte=0"`
	Max   float64 `json:"max" validate:"gte=0"`
}

// SubjectBlueprintList is stored as a jsonb column.
type SubjectBlueprintList []SubjectBlueprint

func (l SubjectBlueprintList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *SubjectBlueprintList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// GradingRuleList is stored as a jsonb column.
type GradingRuleList []GradingRule

func (l GradingRuleList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *GradingRuleList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// ManualStats holds free-form topper/highest-marks overrides keyed by
// subject name, entered by staff instead of being computed.
type ManualStats map[string]string

func (m ManualStats) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(ManualStats{})
	}
	return json.Marshal(m)
}

func (m *ManualStats) Scan(value interface{}) error {
	if value == nil {
		*m = make(ManualStats)
		return nil
	}
	return scanJSON(value, m)
}

// ExamBlueprint is the subject/marks template for an exam, created once and
// reused for every student in the class/section.
type ExamBlueprint struct {
	ID           string               `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	InstituteID  string               `json:"institute_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name         string               `json:"name" gorm:"not null" validate:"required"`
	Class        string               `json:"class" gorm:"not null" validate:"required"`
	Section      string               `json:"section,omitempty"`
	Subjects     SubjectBlueprintList `json:"subjects_blueprint" gorm:"type:jsonb" validate:"required,min=1,dive"`
	GradingRules GradingRuleList      `json:"grading_rules" gorm:"type:jsonb" validate:"dive"`
	Stats        ManualStats          `json:"manual_stats,omitempty" gorm:"type:jsonb"`
	CreatedAt    time.Time            `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time            `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time           `json:"deleted_at,omitempty" gorm:"index"`
}

// MaxTotal is the denominator for percentage calculation.
func (b *ExamBlueprint) MaxTotal() float64 {
	var total float64
	for _, s := range b.Subjects {
		total += s.MaxTheory + s.MaxPractical
	}
	return total
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
