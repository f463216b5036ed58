package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/ltmgen/internal/config"
	"github.com/imamik/ltmgen/internal/config/wizard"
	"github.com/imamik/ltmgen/internal/util/naming"
)

// Factory function variables for init - can be replaced in tests.
var (
	wizardFileExists       = wizard.FileExists
	wizardConfirmOverwrite = wizard.ConfirmOverwrite
	wizardRunWizard        = wizard.RunWizard
	wizardBuildDocument    = wizard.BuildDocument
	wizardWriteDocument    = wizard.WriteDocument
)

// Init runs the configuration wizard and writes the result to outputPath.
func Init(ctx context.Context, outputPath string) error {
	if wizardFileExists(outputPath) {
		overwrite, err := wizardConfirmOverwrite(outputPath)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !overwrite {
			fmt.Fprintln(stdout, "Aborted.")
			return nil
		}
	}

	printWelcome()

	result, err := wizardRunWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	doc := wizardBuildDocument(result)

	if err := wizardWriteDocument(doc, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, doc)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "ltmgen - F5 LTM configuration generator")
	fmt.Fprintln(stdout, "=======================================")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "This wizard creates a starter configuration with one pool.")
	fmt.Fprintln(stdout, "Add more monitors, pools and virtual servers by editing the file.")
	fmt.Fprintln(stdout)
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, doc *config.Document) {
	m := doc.Metadata

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Configuration saved!")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  File: %s\n", outputPath)
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Summary")
	fmt.Fprintln(stdout, "-------")
	fmt.Fprintf(stdout, "  Name:            %s\n", m.Name)
	fmt.Fprintf(stdout, "  Partition:       %s\n", m.Partition)
	if m.LAC != "" {
		fmt.Fprintf(stdout, "  LAC:             %s\n", m.LAC)
	}
	fmt.Fprintf(stdout, "  Nodes:           %d\n", len(doc.Spec.Nodes))
	fmt.Fprintf(stdout, "  Virtual Servers: %d\n", len(doc.Spec.VirtualServers))
	fmt.Fprintf(stdout, "  Bundle:          %s\n", naming.Bundle(m.LAC, m.Name, m.Partition))
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Next Steps")
	fmt.Fprintln(stdout, "----------")
	fmt.Fprintf(stdout, "  1. Review %s if needed\n", outputPath)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "  2. Preview the script:")
	fmt.Fprintf(stdout, "     ltmgen plan -f %s\n", outputPath)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "  3. Generate the bundle:")
	fmt.Fprintf(stdout, "     ltmgen generate -f %s\n", outputPath)
	fmt.Fprintln(stdout)
}
