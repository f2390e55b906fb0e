// Package domain contains the core data types for the RigReport fleet demo.
// This package has zero external dependencies and is imported by every other
// internal package (kv, store, query, service, handler).
package domain

import "time"

// BoatType classifies the hull.
type BoatType string

const (
	BoatTypeSailboat  BoatType = "Sailboat"
	BoatTypeMotorboat BoatType = "Motorboat"
	BoatTypeRIB       BoatType = "RIB"
	BoatTypeDinghy    BoatType = "Dinghy"
	BoatTypeCatamaran BoatType = "Catamaran"
)

// BoatStatus is the operational state of a boat. The store accepts any of
// these values in any order — the transition policy (high-severity issue
// grounds a boat, medium marks it for repair) lives in the service layer,
// never in the store.
type BoatStatus string

const (
	BoatStatusOK              BoatStatus = "OK"
	BoatStatusNeedsInspection BoatStatus = "Needs inspection"
	BoatStatusNeedsRepair     BoatStatus = "Needs repair"
	BoatStatusDoNotSail       BoatStatus = "Do not sail"
	BoatStatusOutOfService    BoatStatus = "Out of service"
)

// Organization is the fleet owner a boat or piece of equipment belongs to.
type Organization string

const (
	OrgClub    Organization = "Club"
	OrgCharter Organization = "Charter"
	OrgSchool  Organization = "School"
)

// Boat is the top-level fleet entity. Maintenance entries and reservations
// reference it by id; there are no live cross-references between records.
type Boat struct {
	ID               string       `json:"id"`
	DisplayName      string       `json:"displayName"`
	HullNumber       string       `json:"hullNumber"`
	Type             BoatType     `json:"type"`
	Status           BoatStatus   `json:"status"`
	Organization     Organization `json:"organization"`
	Location         string       `json:"location"`
	Latitude         *float64     `json:"latitude,omitempty"`
	Longitude        *float64     `json:"longitude,omitempty"`
	InsuranceExpiry  *time.Time   `json:"insuranceExpiry,omitempty"`
	RegistrationDate *time.Time   `json:"registrationDate,omitempty"`
	ImageURL         *string      `json:"imageUrl,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// BoatPatch is a partial update to a Boat. Nil fields are left untouched by
// Apply. There is deliberately no ID field: the store pins the id of the
// record being patched, so a caller can never rename a record's identity.
type BoatPatch struct {
	DisplayName      *string       `json:"displayName,omitempty" validate:"omitempty,min=1"`
	HullNumber       *string       `json:"hullNumber,omitempty"`
	Type             *BoatType     `json:"type,omitempty" validate:"omitempty,oneof=Sailboat Motorboat RIB Dinghy Catamaran"`
	Status           *BoatStatus   `json:"status,omitempty" validate:"omitempty,oneof='OK' 'Needs inspection' 'Needs repair' 'Do not sail' 'Out of service'"`
	Organization     *Organization `json:"organization,omitempty" validate:"omitempty,oneof=Club Charter School"`
	Location         *string       `json:"location,omitempty"`
	Latitude         *float64      `json:"latitude,omitempty"`
	Longitude        *float64      `json:"longitude,omitempty"`
	InsuranceExpiry  *time.Time    `json:"insuranceExpiry,omitempty"`
	RegistrationDate *time.Time    `json:"registrationDate,omitempty"`
	ImageURL         *string       `json:"imageUrl,omitempty"`
}

// Apply shallow-merges the patch onto b. Untouched fields survive.
func (p BoatPatch) Apply(b *Boat) {
	if p.DisplayName != nil {
		b.DisplayName = *p.DisplayName
	}
	if p.HullNumber != nil {
		b.HullNumber = *p.HullNumber
	}
	if p.Type != nil {
		b.Type = *p.Type
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Organization != nil {
		b.Organization = *p.Organization
	}
	if p.Location != nil {
		b.Location = *p.Location
	}
	if p.Latitude != nil {
		b.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		b.Longitude = p.Longitude
	}
	if p.InsuranceExpiry != nil {
		b.InsuranceExpiry = p.InsuranceExpiry
	}
	if p.RegistrationDate != nil {
		b.RegistrationDate = p.RegistrationDate
	}
	if p.ImageURL != nil {
		b.ImageURL = p.ImageURL
	}
}
