package inventory

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/InventoryTracker_Go/internal/domain"
)

// DecodeInput parses a request body into a RecordInput. Unknown keys such as
// _id or addedTime are ignored; anything that is not an object of strings is
// reported as a *domain.ValidationError.
func DecodeInput(data []byte) (domain.RecordInput, error) {
	var input domain.RecordInput
	err := json.Unmarshal(data, &input)
	if err == nil {
		return input, nil
	}

	vErr := domain.NewValidationError(domain.RecordEntityName)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		vErr.Add(typeErr.Field, fmt.Sprintf(MsgFieldWrongType, typeErr.Field))
		return domain.RecordInput{}, vErr
	}

	vErr.Add(FieldBody, MsgBodyNotAnObject)
	return domain.RecordInput{}, vErr
}
