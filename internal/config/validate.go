package config

import (
	"fmt"
	"net/netip"
	"regexp"
	"strings"
)

var (
	// namePattern is what tmsh accepts as an object or partition name
	// without quoting. Names are written unquoted into the script.
	namePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

	// destinationPattern additionally allows IPv6 colons and the %id
	// route-domain suffix.
	destinationPattern = regexp.MustCompile(`^[A-Za-z0-9_.:%-]+$`)
)

// IsValidName reports whether s can be used as an object, partition or
// LAC name.
func IsValidName(s string) bool {
	return namePattern.MatchString(s) && s != "." && s != ".."
}

// ValidationError describes one invalid field of a document entity.
type ValidationError struct {
	Section string // e.g. "spec.nodes"
	Index   int    // -1 for the metadata block
	Entity  string // entity name, empty when the name itself is missing
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	loc := ve.Section
	if ve.Index >= 0 {
		loc = fmt.Sprintf("%s[%d]", ve.Section, ve.Index)
	}
	if ve.Entity != "" {
		loc = fmt.Sprintf("%s (%s)", loc, ve.Entity)
	}
	return fmt.Sprintf("%s: %s %s", loc, ve.Field, ve.Message)
}

// ValidationErrors is the set of problems found in a document.
// Any entry makes the document unusable.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return fmt.Sprintf("%d invalid field(s):\n  %s", len(v), strings.Join(msgs, "\n  "))
}

// Validate checks the shape of every entity and returns all problems at once.
// References between entities are not checked.
func (d *Document) Validate() error {
	var errs ValidationErrors
	add := func(section string, i int, entity, field, msg string) {
		errs = append(errs, ValidationError{
			Section: section,
			Index:   i,
			Entity:  entity,
			Field:   field,
			Message: msg,
		})
	}

	// checkName reports a present but malformed name.
	checkName := func(section string, i int, entity, field, value string) {
		if value != "" && !IsValidName(value) {
			add(section, i, entity, field, fmt.Sprintf("must match %s, got %q", namePattern, value))
		}
	}

	md := d.Metadata
	checkName("metadata", -1, "", "name", md.Name)
	checkName("metadata", -1, "", "partition", md.Partition)
	checkName("metadata", -1, "", "lac", md.LAC)

	for i, m := range d.Spec.Monitors {
		if m.Name == "" {
			add("spec.monitors", i, "", "name", "is required")
		}
		checkName("spec.monitors", i, "", "name", m.Name)
		if m.Interval != nil && *m.Interval <= 0 {
			add("spec.monitors", i, m.Name, "interval", fmt.Sprintf("must be positive, got %d", *m.Interval))
		}
		if m.Timeout != nil && *m.Timeout <= 0 {
			add("spec.monitors", i, m.Name, "timeout", fmt.Sprintf("must be positive, got %d", *m.Timeout))
		}
	}

	for i, p := range d.Spec.Profiles {
		if p.Name == "" {
			add("spec.profiles", i, "", "name", "is required")
		}
		checkName("spec.profiles", i, "", "name", p.Name)
	}

	for i, n := range d.Spec.Nodes {
		if n.Name == "" {
			add("spec.nodes", i, "", "name", "is required")
		}
		checkName("spec.nodes", i, "", "name", n.Name)
		if n.Address == "" {
			add("spec.nodes", i, n.Name, "address", "is required")
		} else if err := validateAddress(n.Address); err != nil {
			add("spec.nodes", i, n.Name, "address", err.Error())
		}
	}

	for i, p := range d.Spec.Pools {
		if p.Name == "" {
			add("spec.pools", i, "", "name", "is required")
		}
		checkName("spec.pools", i, "", "name", p.Name)
		checkName("spec.pools", i, p.Name, "monitor", p.Monitor)
		for j, member := range p.MemberNames() {
			field := fmt.Sprintf("members[%d]", j)
			if strings.TrimSpace(member) == "" {
				add("spec.pools", i, p.Name, field, "must not be empty")
				continue
			}
			checkName("spec.pools", i, p.Name, field, member)
		}
	}

	for i, vs := range d.Spec.VirtualServers {
		if vs.Name == "" {
			add("spec.virtual_servers", i, "", "name", "is required")
		}
		checkName("spec.virtual_servers", i, "", "name", vs.Name)
		checkName("spec.virtual_servers", i, vs.Name, "pool", vs.Pool)
		switch {
		case vs.Destination == "":
			add("spec.virtual_servers", i, vs.Name, "destination", "is required")
		case !destinationPattern.MatchString(vs.Destination):
			add("spec.virtual_servers", i, vs.Name, "destination", fmt.Sprintf("must match %s, got %q", destinationPattern, vs.Destination))
		}
		switch {
		case vs.Port == nil:
			add("spec.virtual_servers", i, vs.Name, "port", "is required")
		case *vs.Port < 1 || *vs.Port > MaxPort:
			add("spec.virtual_servers", i, vs.Name, "port", fmt.Sprintf("must be between 1 and %d, got %d", MaxPort, *vs.Port))
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateAddress accepts plain IPv4 or IPv6 literals.
func validateAddress(addr string) error {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return fmt.Errorf("must be an IP address, got %q", addr)
	}
	if ip.Zone() != "" {
		return fmt.Errorf("must not carry an IPv6 zone, got %q", addr)
	}
	return nil
}
