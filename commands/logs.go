package commands

import (
	"fmt"
)

// LogWriteRequest represents the parameters for appending a log line
type LogWriteRequest struct {
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// LogsListCommand lists the files in the per-run log directory
func LogsListCommand() *CommandResponse {
	if env.Log == nil {
		return NewSuccessResponse([]string{})
	}

	files := env.Log.ListLogFiles()
	if files == nil {
		files = []string{}
	}

	return NewSuccessResponse(files)
}

// LogWriteCommand appends one line to the session log, e.g. a marker from
// a remote client. The logger swallows write failures, so this cannot fail
// once the parameters validate.
func LogWriteCommand(req LogWriteRequest) *CommandResponse {
	if req.Message == "" {
		return NewErrorResponse(fmt.Errorf("message is required"))
	}

	tag := req.Tag
	if tag == "" {
		tag = "remote"
	}

	if env.Log != nil {
		env.Log.Log(tag, req.Message)
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": "Logged",
	})
}
