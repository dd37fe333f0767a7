// Package extract assembles the canonical English message set pushed to the
// translation service.
//
// Messages come from three origins, merged in order of increasing
// precedence:
//
//  1. a small fixed set of hardcoded entries
//  2. translation descriptor JSON files in the GUI checkout
//  3. declaration calls scanned out of the VM's block-strings source
//
// Later origins override earlier ones on id collision; every override is
// reported through the log callback so a masked definition is visible in
// the push output.
package extract

import (
	"fmt"
	"sort"

	"github.com/openblocks-dev/txsync/transifex"
)

// IDPrefix is the namespace marking descriptor entries owned by this
// project. Descriptor ids outside the namespace belong to the upstream
// editor and are only recorded for the audit list.
const IDPrefix = "ob."

// hardcodedMessages are source strings that exist in no scannable file.
var hardcodedMessages = map[string]transifex.Message{
	"ob.feedback": {
		String:           "Give Feedback",
		DeveloperComment: "Menu bar item that links to the feedback page",
	},
	"ob.privacy": {
		String:           "Privacy Policy",
		DeveloperComment: "Link in the footer of every page",
	},
	"ob.viewOnGithub": {
		String:           "View on GitHub",
		DeveloperComment: "Link to the project's source code repository",
	},
}

// Result is the assembled push payload plus the audit list.
type Result struct {
	// Messages is the merged source message set, keyed by id.
	Messages map[string]transifex.Message
	// AllIDs is every id seen in the descriptor scan regardless of
	// namespace, sorted.
	AllIDs []string
}

// Build gathers source messages from the GUI translations directory and the
// VM declaration file. The log callback receives one line per id collision.
func Build(guiTranslationsDir, vmDeclarationFile string, log func(format string, args ...any)) (*Result, error) {
	if log == nil {
		log = func(string, ...any) {}
	}

	merged := make(map[string]transifex.Message, len(hardcodedMessages))
	for id, msg := range hardcodedMessages {
		merged[id] = msg
	}

	descriptors, allIDs, err := ScanDescriptors(guiTranslationsDir)
	if err != nil {
		return nil, err
	}
	for id, msg := range descriptors {
		if _, ok := merged[id]; ok {
			log("descriptor %s overrides hardcoded message", id)
		}
		merged[id] = msg
	}

	declarations, err := ScanDeclarationFile(vmDeclarationFile)
	if err != nil {
		return nil, err
	}
	for _, decl := range declarations {
		if err := validate(decl.ID, decl.Default, vmDeclarationFile); err != nil {
			return nil, err
		}
		if _, ok := merged[decl.ID]; ok {
			log("declaration %s overrides earlier definition", decl.ID)
		}
		merged[decl.ID] = transifex.Message{
			String:           decl.Default,
			DeveloperComment: decl.Description,
		}
	}

	sort.Strings(allIDs)
	return &Result{Messages: merged, AllIDs: allIDs}, nil
}

// validate rejects entries that would upload an empty string or id.
func validate(id, str, origin string) error {
	if id == "" {
		return fmt.Errorf("%s: entry with empty id", origin)
	}
	if str == "" {
		return fmt.Errorf("%s: entry %q has no message string", origin, id)
	}
	return nil
}
