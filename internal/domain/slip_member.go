package domain

import "time"

// SlipMember is a marina customer who can be assigned to slips and billed.
type SlipMember struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Address     *string    `json:"address,omitempty"`
	MemberSince *time.Time `json:"memberSince,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// SlipMemberPatch is a partial update to a SlipMember.
type SlipMemberPatch struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	Email       *string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string    `json:"phone,omitempty"`
	Address     *string    `json:"address,omitempty"`
	MemberSince *time.Time `json:"memberSince,omitempty"`
}

// Apply shallow-merges the patch onto m.
func (p SlipMemberPatch) Apply(m *SlipMember) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Phone != nil {
		m.Phone = p.Phone
	}
	if p.Address != nil {
		m.Address = p.Address
	}
	if p.MemberSince != nil {
		m.MemberSince = p.MemberSince
	}
}
