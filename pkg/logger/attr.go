package logger

import "log/slog"

// Attribute constructors keeping key naming consistent across the codebase.

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier under the key "user_id".
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// Role records a role name under the key "role".
func Role(name string) slog.Attr {
	return slog.String("role", name)
}

// Group records a group name under the key "group".
func Group(name string) slog.Attr {
	return slog.String("group", name)
}

// Project records a project name under the key "project".
func Project(name string) slog.Attr {
	return slog.String("project", name)
}

// Action records an action name under the key "action".
func Action(name string) slog.Attr {
	return slog.String("action", name)
}
