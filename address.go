// Package addr implements a hierarchical addressing scheme for a multi-level
// document model (project → sheet instance → object → property path) and a
// small algebra over paths into nested serializable values: equality, prefix
// testing, common-root extraction, canonical string encoding, and resolution
// of a path against a concrete value tree.
package addr

// ProjectID identifies a project. Opaque; issued by the document model.
type ProjectID string

// SheetID identifies a sheet definition within a project.
type SheetID string

// SheetInstanceID identifies one running instance of a sheet definition.
type SheetInstanceID string

// ObjectKey identifies an object within a sheet instance.
type ObjectKey string

// ProjectAddress is the root of the containment hierarchy.
type ProjectAddress struct {
	ProjectID ProjectID
}

// SheetAddress names one running instance of a sheet definition within a
// project. SheetInstanceID is always populated on a resolved address; use
// SheetClassAddress to talk about all instances of a sheet definition.
type SheetAddress struct {
	ProjectAddress
	SheetID         SheetID
	SheetInstanceID SheetInstanceID
}

// Class strips the instance id, yielding the address of the sheet definition
// itself.
func (a SheetAddress) Class() SheetClassAddress {
	return SheetClassAddress{
		ProjectAddress: a.ProjectAddress,
		SheetID:        a.SheetID,
	}
}

// SheetClassAddress names a sheet definition irrespective of instance: "all
// instances of this sheet id".
type SheetClassAddress struct {
	ProjectAddress
	SheetID SheetID
}

// Instance resolves the class address to a specific instance.
func (a SheetClassAddress) Instance(id SheetInstanceID) SheetAddress {
	return SheetAddress{
		ProjectAddress:  a.ProjectAddress,
		SheetID:         a.SheetID,
		SheetInstanceID: id,
	}
}

// SheetRef addresses either a specific sheet instance or the sheet class as a
// whole. The zero value refers to nothing; build one with RefToInstance or
// RefToClass.
type SheetRef struct {
	class       SheetClassAddress
	instance    SheetInstanceID
	hasInstance bool
}

// RefToInstance builds a reference to one specific sheet instance.
func RefToInstance(a SheetAddress) SheetRef {
	return SheetRef{
		class:       a.Class(),
		instance:    a.SheetInstanceID,
		hasInstance: true,
	}
}

// RefToClass builds a reference covering every instance of the sheet.
func RefToClass(a SheetClassAddress) SheetRef {
	return SheetRef{class: a}
}

// Class returns the sheet-definition address the reference points into.
func (r SheetRef) Class() SheetClassAddress {
	return r.class
}

// Instance reports the instance id when the reference names a specific
// instance.
func (r SheetRef) Instance() (SheetInstanceID, bool) {
	return r.instance, r.hasInstance
}

// Address returns the fully resolved sheet address when the reference names a
// specific instance.
func (r SheetRef) Address() (SheetAddress, bool) {
	if !r.hasInstance {
		return SheetAddress{}, false
	}
	return r.class.Instance(r.instance), true
}

// SheetObjectAddress names one object within a sheet instance.
type SheetObjectAddress struct {
	SheetAddress
	ObjectKey ObjectKey
}

// PropAddress names a (possibly nested) property within an object's value
// tree. Unlike the shallower addresses it is not comparable with == because
// Path is a slice; use Equal.
type PropAddress struct {
	SheetObjectAddress
	Path Path
}

// Equal reports whether both addresses name the same property: every
// inherited field equal and the paths equal element-wise.
func (a PropAddress) Equal(b PropAddress) bool {
	return a.SheetObjectAddress == b.SheetObjectAddress && PathsEqual(a.Path, b.Path)
}

// SequenceAddress names a sequence within a sheet instance. Sequences under
// the same sheet address are distinguished solely by name.
type SequenceAddress struct {
	SheetAddress
	SequenceName string
}
