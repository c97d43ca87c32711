package addr

import (
	"encoding/json"
)

// propAddressJSON is the wire shape for PropAddress. Field names follow the
// document model's conventions so encoded addresses stay interchangeable with
// other producers.
type propAddressJSON struct {
	ProjectID       ProjectID       `json:"projectId"`
	SheetID         SheetID         `json:"sheetId"`
	SheetInstanceID SheetInstanceID `json:"sheetInstanceId"`
	ObjectKey       ObjectKey       `json:"objectKey"`
	PathToProp      Path            `json:"pathToProp"`
}

// ToJSON serialises the address for logging or transport.
func (a PropAddress) ToJSON() ([]byte, error) {
	return json.Marshal(propAddressJSON{
		ProjectID:       a.ProjectID,
		SheetID:         a.SheetID,
		SheetInstanceID: a.SheetInstanceID,
		ObjectKey:       a.ObjectKey,
		PathToProp:      a.Path,
	})
}

// PropAddressFromJSON deserialises a payload previously generated via ToJSON.
func PropAddressFromJSON(payload []byte) (PropAddress, error) {
	var raw propAddressJSON
	if err := json.Unmarshal(payload, &raw); err != nil {
		return PropAddress{}, err
	}
	return PropAddress{
		SheetObjectAddress: SheetObjectAddress{
			SheetAddress: SheetAddress{
				ProjectAddress:  ProjectAddress{ProjectID: raw.ProjectID},
				SheetID:         raw.SheetID,
				SheetInstanceID: raw.SheetInstanceID,
			},
			ObjectKey: raw.ObjectKey,
		},
		Path: raw.PathToProp,
	}, nil
}
