package valueobjects

// LimitResource names a plan-limited resource kind. The set is closed:
// endpoint metadata refers to these constants, never to free-form strings.
type LimitResource string

const (
	LimitRooms LimitResource = "maxRooms"
	LimitStaff LimitResource = "maxStaff"
	LimitKosts LimitResource = "maxKosts"
)

func (r LimitResource) String() string {
	return string(r)
}

func (r LimitResource) IsValid() bool {
	switch r {
	case LimitRooms, LimitStaff, LimitKosts:
		return true
	}
	return false
}
