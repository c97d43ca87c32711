package addr

import "github.com/google/uuid"

// NewProjectID mints a fresh opaque project identifier.
func NewProjectID() ProjectID {
	return ProjectID(uuid.NewString())
}

// NewSheetInstanceID mints a fresh opaque sheet-instance identifier.
func NewSheetInstanceID() SheetInstanceID {
	return SheetInstanceID(uuid.NewString())
}

// NewObjectKey mints a fresh opaque object key.
func NewObjectKey() ObjectKey {
	return ObjectKey(uuid.NewString())
}
