package handlers

import (
	"bytes"
	"testing"

	"github.com/imamik/ltmgen/internal/bundle"
	"github.com/imamik/ltmgen/internal/logging"
	ltmtesting "github.com/imamik/ltmgen/internal/testing"
	"github.com/imamik/ltmgen/internal/util/retry"
)

const (
	endToEndDocument = ltmtesting.EndToEndDocument
	warningDocument  = ltmtesting.WarningDocument
)

var fixedTime = ltmtesting.FixedTime

// setupHandlerTest captures output, silences logs, fixes the clock and
// restores everything when the test ends.
func setupHandlerTest(t *testing.T) *bytes.Buffer {
	t.Helper()

	origStdout, origLogger, origNow, origStyles := stdout, logger, now, useStyles
	origLoad, origStore, origWatch := loadDocument, newObjectStore, watchFile
	origPublish := extraPublishOptions

	var buf bytes.Buffer
	stdout = &buf
	logger = logging.Discard()
	now = ltmtesting.FixedClock
	useStyles = func() bool { return false }
	extraPublishOptions = []bundle.PublishOption{bundle.WithRetry(retry.WithMaxRetries(0))}

	t.Cleanup(func() {
		stdout, logger, now, useStyles = origStdout, origLogger, origNow, origStyles
		loadDocument, newObjectStore, watchFile = origLoad, origStore, origWatch
		extraPublishOptions = origPublish
	})

	return &buf
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return ltmtesting.WriteDocument(t, content)
}
