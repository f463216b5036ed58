package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errNameRequired      = errors.New("name is required")
	errNameInvalid       = errors.New("name must start with a letter or digit and contain only letters, digits, '.', '_' or '-'")
	errNodesRequired     = errors.New("at least one node is required")
	errNodeEntryInvalid  = errors.New("nodes must be written as name=address")
	errAddressInvalid    = errors.New("address must be an IPv4 or IPv6 literal")
	errPortInvalid       = errors.New("port must be a number between 1 and 65535")
	errDuplicateNodeName = errors.New("node names must be unique")
)
