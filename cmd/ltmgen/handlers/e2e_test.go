package handlers

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/ltmgen/internal/bundle"
	"github.com/imamik/ltmgen/internal/logging"
)

// scriptCommands returns the tmsh command lines of a script, each reduced
// to its first line and with the idempotency guard stripped.
func scriptCommands(script string) []string {
	var cmds []string
	for _, line := range strings.Split(script, "\n") {
		if !strings.HasPrefix(line, "tmsh ") {
			continue
		}
		line = strings.TrimSuffix(line, " \\")
		if i := strings.Index(line, " || echo"); i >= 0 {
			line = line[:i]
		}
		cmds = append(cmds, line)
	}
	return cmds
}

var _ = Describe("generate", func() {
	var (
		ctx     context.Context
		workDir string
		cfgPath string
		out     *bytes.Buffer
	)

	BeforeEach(func() {
		ctx = context.Background()
		workDir = GinkgoT().TempDir()
		cfgPath = filepath.Join(workDir, "ltm_config.yaml")
		Expect(os.WriteFile(cfgPath, []byte(endToEndDocument), 0o600)).To(Succeed())

		origStdout, origLogger, origNow, origStyles := stdout, logger, now, useStyles
		out = &bytes.Buffer{}
		stdout = out
		logger = logging.New(GinkgoWriter, 1)
		now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
		useStyles = func() bool { return false }
		DeferCleanup(func() {
			stdout, logger, now, useStyles = origStdout, origLogger, origNow, origStyles
		})
	})

	Context("with the web tier configuration in the Common partition", func() {
		var bundleDir string

		BeforeEach(func() {
			By("generating the bundle")
			Expect(Generate(ctx, GenerateOptions{ConfigPath: cfgPath, OutputDir: workDir})).To(Succeed())
			bundleDir = filepath.Join(workDir, "L1-web-Common")
		})

		It("creates the bundle directory with both artifacts", func() {
			Expect(filepath.Join(bundleDir, "configure_f5_ltm.sh")).To(BeAnExistingFile())
			Expect(filepath.Join(bundleDir, "README.md")).To(BeAnExistingFile())

			info, err := os.Stat(filepath.Join(bundleDir, "configure_f5_ltm.sh"))
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o755)))
		})

		It("emits the commands in dependency order without creating a partition", func() {
			data, err := os.ReadFile(filepath.Join(bundleDir, "configure_f5_ltm.sh"))
			Expect(err).NotTo(HaveOccurred())
			script := string(data)

			Expect(script).To(HavePrefix("#!/bin/bash\n"))
			Expect(scriptCommands(script)).To(Equal([]string{
				"tmsh create ltm node /Common/n1",
				"tmsh create ltm pool /Common/p1",
				"tmsh modify ltm pool /Common/p1",
				"tmsh create ltm virtual /Common/vs1",
				"tmsh save sys config",
			}))
			Expect(script).To(ContainSubstring("members add { 10.0.0.1:80 }"))
			Expect(script).To(ContainSubstring("pool /Common/p1 \\\n"))
			Expect(script).NotTo(ContainSubstring("auth partition"))
			Expect(script).To(HaveSuffix("echo \"F5 LTM configuration applied successfully!\"\n" +
				"echo \"Configuration: web\"\n" +
				"echo \"Partition: Common\"\n" +
				"echo \"LAC: L1\"\n"))
		})

		It("documents how to run the script", func() {
			data, err := os.ReadFile(filepath.Join(bundleDir, "README.md"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("L1-web-Common/configure_f5_ltm.sh"))
			Expect(string(data)).To(ContainSubstring("export F5_HOST="))
		})

		It("refuses to overwrite the bundle on a second run", func() {
			before, err := os.ReadFile(filepath.Join(bundleDir, "configure_f5_ltm.sh"))
			Expect(err).NotTo(HaveOccurred())

			err = Generate(ctx, GenerateOptions{ConfigPath: cfgPath, OutputDir: workDir})
			Expect(err).To(MatchError(bundle.ErrExists))

			after, err := os.ReadFile(filepath.Join(bundleDir, "configure_f5_ltm.sh"))
			Expect(err).NotTo(HaveOccurred())
			Expect(after).To(Equal(before))
		})
	})

	Context("with an invalid configuration", func() {
		It("fails before writing anything", func() {
			Expect(os.WriteFile(cfgPath, []byte("spec:\n  nodes:\n    - name: n1\n      address: 10.0.0.300\n"), 0o600)).To(Succeed())

			err := Generate(ctx, GenerateOptions{ConfigPath: cfgPath, OutputDir: workDir})
			Expect(err).To(HaveOccurred())

			entries, err := os.ReadDir(workDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})
	})
})
