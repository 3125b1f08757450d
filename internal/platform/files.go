package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSFreeBSD = "freebsd"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// ImageExtensions lists the file types shown on demo cards
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".svg"}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomePicturesDir returns the standard Pictures directory for the user
func GetHomePicturesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Pictures"), nil
}

// IsImageFile reports whether name has a known image extension
func IsImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ListImages returns the image files directly inside dir, sorted by name.
// Hidden files are skipped. limit <= 0 means no limit.
func ListImages(dir string, limit int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if IsImageFile(entry.Name()) {
			images = append(images, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(images)

	if limit > 0 && len(images) > limit {
		images = images[:limit]
	}
	return images, nil
}

// OpenFileWithDefaultApp hands the file to the system viewer without waiting
// for it to exit
func OpenFileWithDefaultApp(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	name, args, err := openCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}

// openCommand returns the program and arguments that open path on goos
func openCommand(goos, path string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{path}, nil
	case OSWindows:
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", path}, nil
	case OSLinux, OSFreeBSD:
		return XDGOpenCommand, []string{path}, nil
	}
	return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
}
