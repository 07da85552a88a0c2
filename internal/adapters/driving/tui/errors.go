package tui

import "errors"

// ErrMissingAssistantService is returned when the assistant service is not provided.
var ErrMissingAssistantService = errors.New("tui: assistant service is required")

// ErrMissingWorkOrderService is returned when the work order service is not provided.
var ErrMissingWorkOrderService = errors.New("tui: work order service is required")
