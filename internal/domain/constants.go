package domain

// JSON field names of InventoryRecord
const (
	FieldID           = "_id"
	FieldDescription  = "description"
	FieldManufacturer = "manufacturer"
	FieldModel        = "model"
	FieldSerialNumber = "serialNumber"
	FieldType         = "type"
	FieldOwner        = "owner"
	FieldCurrentUser  = "currentUser"
	FieldStatus       = "status"
	FieldAddedTime    = "addedTime"
)

// SearchFields lists the fields a free-text query is matched against.
var SearchFields = []string{
	FieldDescription,
	FieldManufacturer,
	FieldModel,
	FieldSerialNumber,
	FieldType,
	FieldOwner,
	FieldCurrentUser,
}

// RecordEntityName prefixes validation failure messages.
const RecordEntityName = "Inventory"

// MaxFieldLength bounds every text field of a record.
const MaxFieldLength = 200
