package domain

import "time"

// InventoryRecord is one tracked piece of equipment.
// The pair (SerialNumber, Type) is unique across all records.
type InventoryRecord struct {
	ID           string    `json:"_id" db:"id"`
	Description  string    `json:"description" db:"description"`
	Manufacturer string    `json:"manufacturer" db:"manufacturer"`
	Model        string    `json:"model" db:"model"`
	SerialNumber string    `json:"serialNumber" db:"serial_number"`
	Type         string    `json:"type" db:"type"`
	Owner        string    `json:"owner" db:"owner"`
	CurrentUser  string    `json:"currentUser" db:"current_user_name"`
	Status       string    `json:"status,omitempty" db:"status"`
	AddedTime    time.Time `json:"addedTime" db:"added_time"`
}

// RecordInput holds every mutable field of a record. Updates replace all of
// them; there is no partial patch.
type RecordInput struct {
	Description  string `json:"description" validate:"required,notblank,max=200,excludesall=\x00"`
	Manufacturer string `json:"manufacturer" validate:"required,notblank,max=200,excludesall=\x00"`
	Model        string `json:"model" validate:"required,notblank,max=200,excludesall=\x00"`
	SerialNumber string `json:"serialNumber" validate:"required,notblank,max=200,excludesall=\x00"`
	Type         string `json:"type" validate:"required,notblank,max=200,excludesall=\x00"`
	Owner        string `json:"owner" validate:"required,notblank,max=200,excludesall=\x00"`
	CurrentUser  string `json:"currentUser" validate:"required,notblank,max=200,excludesall=\x00"`
	Status       string `json:"status,omitempty" validate:"omitempty,max=200,excludesall=\x00"`
}

// NewRecord builds an unsaved record from the input. ID and AddedTime are
// left for the store to assign.
func NewRecord(in RecordInput) *InventoryRecord {
	r := &InventoryRecord{}
	in.ApplyTo(r)
	return r
}

// ApplyTo overwrites the mutable fields of r. ID and AddedTime are untouched.
func (in RecordInput) ApplyTo(r *InventoryRecord) {
	r.Description = in.Description
	r.Manufacturer = in.Manufacturer
	r.Model = in.Model
	r.SerialNumber = in.SerialNumber
	r.Type = in.Type
	r.Owner = in.Owner
	r.CurrentUser = in.CurrentUser
	r.Status = in.Status
}

// Input returns the mutable fields of r.
func (r InventoryRecord) Input() RecordInput {
	return RecordInput{
		Description:  r.Description,
		Manufacturer: r.Manufacturer,
		Model:        r.Model,
		SerialNumber: r.SerialNumber,
		Type:         r.Type,
		Owner:        r.Owner,
		CurrentUser:  r.CurrentUser,
		Status:       r.Status,
	}
}

// SearchableValues returns the textual fields matched by a search, in
// SearchFields order.
func (r InventoryRecord) SearchableValues() []string {
	return []string{
		r.Description,
		r.Manufacturer,
		r.Model,
		r.SerialNumber,
		r.Type,
		r.Owner,
		r.CurrentUser,
	}
}
