package models

import (
	"strings"
	"time"
)

// Institute holds the identity and letterhead details of a school. Every
// generated document (receipt, report card) is stamped with these fields.
type Institute struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name        string     `json:"institute_name" gorm:"not null" validate:"required"`
	LogoURL     string     `json:"logo_url,omitempty"`
	Affiliation string     `json:"affiliation,omitempty"`
	Address     string     `json:"address,omitempty"`
	Landmark    string     `json:"landmark,omitempty"`
	District    string     `json:"district,omitempty"`
	State       string     `json:"state,omitempty"`
	Pincode     string     `json:"pincode,omitempty"`
	Mobile      string     `json:"mobile,omitempty"`
	Email       string     `json:"email,omitempty" validate:"omitempty,email"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// FullAddress joins the address parts with commas, skipping empty parts.
func (i *Institute) FullAddress() string {
	parts := []string{i.Address, i.Landmark, i.District, i.State, i.Pincode}
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, ", ")
}
