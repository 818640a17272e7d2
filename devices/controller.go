package devices

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mobile-next/emubridge/core"
)

// ControllerType is the physical controller profile a connected controller
// is configured as.
type ControllerType int

const (
	ProController ControllerType = iota
	JoyConLeft
	JoyConRight
	JoyConPair
	Handheld
)

var controllerTypeNames = map[ControllerType]string{
	ProController: "pro-controller",
	JoyConLeft:    "joycon-left",
	JoyConRight:   "joycon-right",
	JoyConPair:    "joycon-pair",
	Handheld:      "handheld",
}

func (t ControllerType) String() string {
	if name, ok := controllerTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// GamepadKind maps the profile to the numeric kind the native input
// subsystem expects.
func (t ControllerType) GamepadKind() core.GamepadKind {
	return core.GamepadKind(t)
}

// ParseControllerType converts a profile name back to a ControllerType.
func ParseControllerType(name string) (ControllerType, error) {
	for t, n := range controllerTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown controller type: %q", name)
}

// MarshalText renders the type as its profile name, for JSON and ini output.
func (t ControllerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a profile name.
func (t *ControllerType) UnmarshalText(text []byte) error {
	parsed, err := ParseControllerType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Controller is one connected controller. Identity is carried entirely by
// ID; two controllers are the same controller iff their IDs are equal.
type Controller struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      ControllerType `json:"type"`
	IsVirtual bool           `json:"isVirtual"`
	Slot      *int           `json:"slot,omitempty"`
}

// NewVirtualController creates a controller that exists only on this side
// of the native boundary, with a freshly generated identity.
func NewVirtualController(name string, t ControllerType) Controller {
	return Controller{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      t,
		IsVirtual: true,
	}
}
