// Package paths initializes tiktokdl's filepaths, directories, etc.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tiktokdl/internal/domain/consts"
)

// File and directory path strings.
//
// Left empty until InitProgFilesDirs runs, which disables the history
// database by default in tests and library use.
var (
	HomeProgDir   string
	HistoryDBPath string
)

// InitProgFilesDirs initializes necessary program directories and filepaths.
func InitProgFilesDirs() error {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return errors.New("failed to get home directory")
	}

	// Home program dir ~/.tiktokdl
	HomeProgDir = filepath.Join(userHomeDir, consts.ProgramDir)
	if _, err := os.Stat(HomeProgDir); os.IsNotExist(err) {
		if err := os.MkdirAll(HomeProgDir, consts.PermsHomeProgDir); err != nil {
			return fmt.Errorf("failed to make directories: %w", err)
		}
	}

	HistoryDBPath = filepath.Join(HomeProgDir, consts.HistoryDBFile)
	return nil
}
