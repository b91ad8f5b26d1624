package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/marathon/internal/database"
	"github.com/akyairhashvil/marathon/internal/report"
	"github.com/akyairhashvil/marathon/internal/util"
)

var (
	errNoBackups      = errors.New("backups are not available")
	errNoPlanToExport = errors.New("no plan to export")
)

// BackupFileName names a backup written on day.
func BackupFileName(day string, encrypted bool) string {
	if encrypted {
		return fmt.Sprintf("marathon_backup_%s.enc.json", day)
	}
	return fmt.Sprintf("marathon_backup_%s.json", day)
}

// exportBackup writes a backup into the reports directory; a non-empty
// passphrase encrypts it.
func (m MainModel) exportBackup(passphrase string) MainModel {
	if m.opts.Backups == nil {
		m.err = errNoBackups
		return m
	}
	payload, err := m.opts.Backups.ExportBackup(m.ctx, database.ExportOptions{
		EncryptOutput: passphrase != "",
		Passphrase:    passphrase,
	})
	if err != nil {
		util.LogError("export backup", err)
		m.err = err
		return m
	}
	if err := os.MkdirAll(m.opts.ReportsDir, 0o755); err != nil {
		m.err = err
		return m
	}
	path := filepath.Join(m.opts.ReportsDir, BackupFileName(util.FormatDate(m.store.Today()), passphrase != ""))
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		util.LogError("write backup", err)
		m.err = err
		return m
	}
	m.Message = "Backup saved to " + path
	return m
}

func (m MainModel) writeReport() MainModel {
	if m.plan == nil {
		m.err = errNoPlanToExport
		return m
	}
	path, err := report.WriteFile(m.opts.ReportsDir, m.plan, m.stats, m.cfg.Units)
	if err != nil {
		util.LogError("write pdf report", err)
		m.err = err
		return m
	}
	m.Message = "Report saved to " + path
	return m
}
