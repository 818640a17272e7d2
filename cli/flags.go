package cli

var (
	verbose bool

	// for controllers commands
	controllerId   string
	controllerType string
	controllerName string

	// for overlay commands
	widgetId string

	// for cheats commands
	titleId string
)
