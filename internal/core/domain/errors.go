package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArgument is returned when a required argument is nil or empty.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrMalformedDocument is returned when a document node lacks a required attribute
	// or has an unexpected shape.
	ErrMalformedDocument = zerr.New("malformed document")

	// ErrTaskNotFound is returned when a task does not belong to the target it is removed from.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrTargetNotFound is returned when a target does not belong to the collection it is removed from.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrImportedTarget is returned when mutating a target that was pulled in via an import.
	ErrImportedTarget = zerr.New("imported target cannot be modified")

	// ErrReservedParameter is returned when a task parameter name collides with a reserved attribute.
	ErrReservedParameter = zerr.New("reserved parameter name")

	// ErrImportCycle is returned when a project imports itself, directly or transitively.
	ErrImportCycle = zerr.New("import cycle detected")

	// ErrNoProjectsSpecified is returned when an inspection is requested without any project.
	ErrNoProjectsSpecified = zerr.New("no projects specified")
)
