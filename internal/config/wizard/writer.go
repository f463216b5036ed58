package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/imamik/ltmgen/internal/config"
)

// Function variables for dependency injection in tests.
var (
	confirmOverwrite = defaultConfirmOverwrite
	now              = time.Now
)

// WriteDocument validates doc and writes it as YAML with a descriptive header.
func WriteDocument(doc *config.Document, outputPath string) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("generated configuration is invalid: %w", err)
	}

	data, err := config.MarshalDocument(doc)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath))
	sb.WriteString("\n")
	sb.Write(data)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// generateHeader creates the YAML file header comment.
func generateHeader(outputPath string) string {
	return fmt.Sprintf(`# F5 LTM configuration
# Generated by: ltmgen init
# Generated at: %s
#
# Review the monitor send/receive strings before generating.
#
# Usage:
#   ltmgen plan -f %s
#   ltmgen generate -f %s
`, now().Format(time.RFC3339), outputPath, outputPath)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ConfirmOverwrite prompts the user to confirm overwriting an existing file.
func ConfirmOverwrite(path string) (bool, error) {
	return confirmOverwrite(path)
}

// defaultConfirmOverwrite is the default implementation that prompts via stdin.
func defaultConfirmOverwrite(path string) (bool, error) {
	fmt.Printf("\nFile already exists: %s\n", path)
	fmt.Print("Overwrite? (y/n): ")

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
