package wizard

import (
	"context"
	"net/netip"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/ltmgen/internal/config"
)

// nameRegex matches names that are safe as tmsh object names and as part of
// a bundle directory name.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// runMetadataGroup prompts for the configuration identity.
func runMetadataGroup(ctx context.Context, result *Result) error {
	result.Partition = config.DefaultPartition

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Configuration Name").
				Description("Used for object names and the bundle directory").
				Placeholder("web").
				Value(&result.Name).
				Validate(validateName),
			huh.NewInput().
				Title("Partition").
				Description("Administrative partition; Common always exists").
				Value(&result.Partition).
				Validate(validateName),
			huh.NewInput().
				Title("LAC (Optional)").
				Description("Change or ticket identifier, prefixed to the bundle name").
				Placeholder("CHG-1234").
				Value(&result.LAC).
				Validate(validateOptionalName),
			huh.NewInput().
				Title("Description (Optional)").
				Value(&result.Description),
		).Title("Configuration"),
	).RunWithContext(ctx)
}

// runHealthGroup prompts for the monitor and profile types.
func runHealthGroup(ctx context.Context, result *Result) error {
	result.MonitorType = string(config.MonitorHTTP)
	result.ProfileType = string(config.ProfileHTTP)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Monitor Type").
				Description("How the pool checks its members").
				Options(TypesToOptions(MonitorTypes)...).
				Value(&result.MonitorType),
			huh.NewSelect[string]().
				Title("Profile Type").
				Description("Protocol handling on the virtual server").
				Options(TypesToOptions(ProfileTypes)...).
				Value(&result.ProfileType),
		).Title("Health Checks"),
	).RunWithContext(ctx)
}

// runNodesGroup prompts for the backend nodes.
func runNodesGroup(ctx context.Context, result *Result) error {
	var nodesInput string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Nodes").
				Description("One name=address per line or comma-separated").
				Placeholder("web1=10.0.0.11\nweb2=10.0.0.12").
				Value(&nodesInput).
				Validate(validateNodes),
		).Title("Backends"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	result.Nodes, err = parseNodes(nodesInput)
	return err
}

// runVirtualServerGroup prompts for an optional listener.
func runVirtualServerGroup(ctx context.Context, result *Result) error {
	result.AddVirtualServer = true

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Add Virtual Server").
				Description("Create a listener that forwards to the pool").
				Value(&result.AddVirtualServer),
		).Title("Virtual Server"),
	).RunWithContext(ctx)

	if err != nil || !result.AddVirtualServer {
		return err
	}

	portInput := "80"
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Destination Address").
				Placeholder("192.0.2.10").
				Value(&result.Destination).
				Validate(validateAddress),
			huh.NewInput().
				Title("Port").
				Value(&portInput).
				Validate(validatePort),
		).Title("Listener"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	result.Port, err = strconv.Atoi(strings.TrimSpace(portInput))
	return err
}

// validateName validates an object name.
func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errNameRequired
	}
	if !nameRegex.MatchString(s) {
		return errNameInvalid
	}
	return nil
}

// validateOptionalName accepts an empty value or a valid name.
func validateOptionalName(s string) error {
	if s == "" {
		return nil
	}
	return validateName(s)
}

func validateAddress(s string) error {
	if _, err := netip.ParseAddr(strings.TrimSpace(s)); err != nil {
		return errAddressInvalid
	}
	return nil
}

func validatePort(s string) error {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || p < 1 || p > config.MaxPort {
		return errPortInvalid
	}
	return nil
}

func validateNodes(s string) error {
	_, err := parseNodes(s)
	return err
}

// parseNodes parses name=address entries separated by newlines or commas.
func parseNodes(input string) ([]NodeEntry, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == '\n' || r == ','
	})

	seen := make(map[string]bool, len(fields))
	nodes := make([]NodeEntry, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		name, addr, ok := strings.Cut(f, "=")
		name, addr = strings.TrimSpace(name), strings.TrimSpace(addr)
		if !ok || name == "" || addr == "" {
			return nil, errNodeEntryInvalid
		}
		if err := validateName(name); err != nil {
			return nil, err
		}
		if err := validateAddress(addr); err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, errDuplicateNodeName
		}
		seen[name] = true
		nodes = append(nodes, NodeEntry{Name: name, Address: addr})
	}

	if len(nodes) == 0 {
		return nil, errNodesRequired
	}
	return nodes, nil
}
