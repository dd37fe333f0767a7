// txsync — synchronizes localization strings between the translation
// service and the sibling application checkouts (GUI, packager, desktop).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/openblocks-dev/txsync/config"
	"github.com/openblocks-dev/txsync/extract"
	"github.com/openblocks-dev/txsync/locales"
	"github.com/openblocks-dev/txsync/pull"
	"github.com/openblocks-dev/txsync/settings"
	"github.com/openblocks-dev/txsync/transifex"
	"github.com/spf13/cobra"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ResourcePush is the service resource the source message set uploads to.
const ResourcePush = "source-strings"

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "txsync",
		Short: "Sync localization strings with the translation service",
		Long: `txsync keeps the project's translations in sync.

'txsync pull' fetches translated message bundles for every application
checkout present in the workspace and writes their per-locale JSON and
manifest files. 'txsync push' extracts the English source strings from the
GUI and VM checkouts and uploads them to the translation service.

Credentials come from the ` + settings.TokenEnv + ` environment variable
(a workspace .env file is honored).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&rootDir, "root", "..", "Workspace directory containing the application checkouts")

	root.AddCommand(
		newPullCmd(),
		newPushCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("txsync version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// pull (service → application checkouts)
// ---------------------------------------------------------------------------

func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Pull translations into every application checkout present",
		Long: `Fetch every supported locale for each application's resources,
drop strings identical to the English source, exclude locales below each
resource's completion threshold, and write the results into the checkout.

Applications that are not checked out in the workspace are skipped.`,
		Run: func(cmd *cobra.Command, args []string) {
			runPull()
		},
	}
}

func runPull() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, client := setup()
	puller := &pull.Puller{
		Service:      client,
		Locales:      locales.Supported(),
		SourceLocale: locales.SourceLocale,
		Concurrency:  cfg.Concurrency,
		Log:          logInfo,
	}

	targets := []struct {
		name string
		sync func(context.Context, *pull.Puller, string) error
	}{
		{config.SiblingGUI, pull.SyncGUI},
		{config.SiblingPackager, pull.SyncPackager},
		{config.SiblingDesktop, pull.SyncDesktop},
	}

	for _, target := range targets {
		dir := cfg.SiblingDir(target.name)
		if !cfg.SiblingExists(target.name) {
			logWarning("%s is not checked out at %s, skipping", target.name, dir)
			continue
		}
		logInfo("Syncing %s...", target.name)
		if err := target.sync(ctx, puller, dir); err != nil {
			logError("Syncing %s: %v", target.name, err)
			os.Exit(1)
		}
		logSuccess("%s is up to date", target.name)
	}
}

// ---------------------------------------------------------------------------
// push (application checkouts → service)
// ---------------------------------------------------------------------------

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Upload the English source strings to the translation service",
		Long: `Assemble the canonical English message set from the GUI translation
descriptors and the VM block-strings declarations, write the audit list of
every descriptor id, and upload the merged set.

Unlike pull, push requires the gui and vm checkouts to be present.`,
		Run: func(cmd *cobra.Command, args []string) {
			runPush()
		},
	}
}

func runPush() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, client := setup()

	for _, name := range []string{config.SiblingGUI, config.SiblingVM} {
		if !cfg.SiblingExists(name) {
			logError("push requires the %s checkout at %s", name, cfg.SiblingDir(name))
			os.Exit(1)
		}
	}

	guiTranslations := filepath.Join(cfg.SiblingDir(config.SiblingGUI), "translations")
	vmFile := filepath.Join(cfg.SiblingDir(config.SiblingVM), "src", "extension-support", "block-strings.js")

	result, err := extract.Build(guiTranslations, vmFile, logWarning)
	if err != nil {
		logError("Extracting source messages: %v", err)
		os.Exit(1)
	}
	logInfo("Collected %d source messages (%d descriptor ids audited)", len(result.Messages), len(result.AllIDs))

	auditPath := filepath.Join(rootDir, "exported-ids.json")
	if err := writeAuditList(auditPath, result.AllIDs); err != nil {
		logError("Writing audit list: %v", err)
		os.Exit(1)
	}
	logInfo("Wrote %s", auditPath)

	if err := client.PushSource(ctx, ResourcePush, result.Messages); err != nil {
		logError("Uploading %s: %v", ResourcePush, err)
		os.Exit(1)
	}
	logSuccess("Pushed %d messages to %s", len(result.Messages), ResourcePush)
}

// ---------------------------------------------------------------------------
// Shared setup
// ---------------------------------------------------------------------------

func setup() (*config.Config, *transifex.Client) {
	cfg, err := config.Load(rootDir)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	token, err := settings.Token(rootDir)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	return cfg, transifex.New(cfg.ServiceURL, cfg.Project, token)
}

func writeAuditList(path string, ids []string) error {
	data, err := json.MarshalIndent(ids, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
