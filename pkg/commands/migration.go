package commands

import (
	"time"

	"tableflip.dev/ldr/pkg/migration"
	"tableflip.dev/ldr/pkg/printers"
	"tableflip.dev/ldr/pkg/store"
)

// maybeMigrate converts legacy plain-text files into the structured format
// the first time any command runs after an upgrade.
func maybeMigrate() error {
	p, err := store.Load(nil)
	if err != nil {
		return err
	}
	if !migration.Needed(p) {
		return nil
	}

	res, err := migration.Run(p, time.Now().Format("2006-01-02"))
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Confirm("Migrated %d tasks and %d archived items to the new format (originals saved with a .bak suffix)",
		res.Tasks, res.Archived)
	return nil
}
