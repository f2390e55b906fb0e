package domain

import "time"

// SlipMemberAssignment links a member to a slip. It is a pure join row: the
// store does not reject duplicate assignments — pickers in a UI are expected
// to filter out already-assigned members.
type SlipMemberAssignment struct {
	ID        string    `json:"id"`
	SlipID    string    `json:"slipId"`
	MemberID  string    `json:"memberId"`
	Primary   bool      `json:"primary"`
	CreatedAt time.Time `json:"createdAt"`
}

// SlipBoatAssignment links a boat to a slip. Same join-row semantics as
// SlipMemberAssignment; deleting the boat does not remove the row.
type SlipBoatAssignment struct {
	ID        string    `json:"id"`
	SlipID    string    `json:"slipId"`
	BoatID    string    `json:"boatId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SlipMemberAssignmentPatch is a partial update to a SlipMemberAssignment.
type SlipMemberAssignmentPatch struct {
	SlipID   *string `json:"slipId,omitempty"`
	MemberID *string `json:"memberId,omitempty"`
	Primary  *bool   `json:"primary,omitempty"`
}

// Apply shallow-merges the patch onto a.
func (p SlipMemberAssignmentPatch) Apply(a *SlipMemberAssignment) {
	if p.SlipID != nil {
		a.SlipID = *p.SlipID
	}
	if p.MemberID != nil {
		a.MemberID = *p.MemberID
	}
	if p.Primary != nil {
		a.Primary = *p.Primary
	}
}

// SlipBoatAssignmentPatch is a partial update to a SlipBoatAssignment.
type SlipBoatAssignmentPatch struct {
	SlipID *string `json:"slipId,omitempty"`
	BoatID *string `json:"boatId,omitempty"`
}

// Apply shallow-merges the patch onto a.
func (p SlipBoatAssignmentPatch) Apply(a *SlipBoatAssignment) {
	if p.SlipID != nil {
		a.SlipID = *p.SlipID
	}
	if p.BoatID != nil {
		a.BoatID = *p.BoatID
	}
}
