package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver locates the binary's own directory and a platform-appropriate
// data directory, used to find config.toml and the dict/trie data tree when
// the -build directory does not exist.
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	dataDir        string
}

// NewPathResolver determines the executable location and platform data dir.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("could not determine home directory: %v", err)
		homeDir = "/tmp"
	}

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  execDir,
		homeDir:        homeDir,
		dataDir:        getDataDir(homeDir),
	}
	log.Debugf("path resolver: exec=%s dataDir=%s", execPath, pr.dataDir)
	return pr, nil
}

// ExecutableDir returns the directory containing the running binary.
func (p *PathResolver) ExecutableDir() string { return p.executableDir }

// DataDir returns the platform data directory for acrostic (dict/trie files).
func (p *PathResolver) DataDir() string { return p.dataDir }

func getDataDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "acrostic")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "acrostic")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "acrostic")
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "acrostic")
		}
		return filepath.Join(homeDir, ".local", "share", "acrostic")
	}
}
