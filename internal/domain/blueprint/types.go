package blueprint

// DataType is the declared type of an input or artifact value.
type DataType string

// Legal input and artifact types.
const (
	TypeText    DataType = "text"
	TypeImage   DataType = "image"
	TypeAudio   DataType = "audio"
	TypeVideo   DataType = "video"
	TypeNumber  DataType = "number"
	TypeBoolean DataType = "boolean"
	TypeArray   DataType = "array"
)

// IsValid reports whether t is a legal input or artifact type.
func (t DataType) IsValid() bool {
	switch t {
	case TypeText, TypeImage, TypeAudio, TypeVideo, TypeNumber, TypeBoolean, TypeArray:
		return true
	default:
		return false
	}
}

// IsValidItemType reports whether t is a legal array element type.
// Arrays of arrays are not supported.
func (t DataType) IsValidItemType() bool {
	return t != TypeArray && t.IsValid()
}

// System inputs are supplied by the execution host at run time and are
// valid endpoint bases without being declared in a document's inputs.
// This list is a contract with the host; keep the two sides in sync.
const (
	SystemInputClipDuration    = "ClipDuration"
	SystemInputSegmentCount    = "SegmentCount"
	SystemInputSegmentDuration = "SegmentDuration"
)

// SystemInputs lists every host-supplied input identifier.
func SystemInputs() []string {
	return []string{
		SystemInputClipDuration,
		SystemInputSegmentCount,
		SystemInputSegmentDuration,
	}
}

// IsSystemInput reports whether name is a host-supplied input identifier.
func IsSystemInput(name string) bool {
	switch name {
	case SystemInputClipDuration, SystemInputSegmentCount, SystemInputSegmentDuration:
		return true
	default:
		return false
	}
}
