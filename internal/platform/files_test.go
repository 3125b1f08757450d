package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomePicturesDir(t *testing.T) {
	dir, err := GetHomePicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures directory: %v", err)
	}
	if filepath.Base(dir) != "Pictures" {
		t.Errorf("Expected directory to end with 'Pictures', got: %s", dir)
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"cat.png", true},
		{"CAT.JPG", true},
		{"photo.jpeg", true},
		{"drawing.svg", true},
		{"notes.txt", false},
		{"archive.png.zip", false},
		{"noext", false},
	}

	for _, test := range tests {
		if result := IsImageFile(test.name); result != test.expected {
			t.Errorf("IsImageFile(%q) = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.jpg", ".hidden.png", "readme.md", "c.gif"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	images, err := ListImages(dir, 0)
	if err != nil {
		t.Fatalf("ListImages returned error: %v", err)
	}
	var names []string
	for _, p := range images {
		names = append(names, filepath.Base(p))
	}
	if strings.Join(names, ",") != "a.jpg,b.png,c.gif" {
		t.Errorf("Expected a.jpg,b.png,c.gif, got %v", names)
	}

	limited, _ := ListImages(dir, 2)
	if len(limited) != 2 {
		t.Errorf("Expected 2 images with limit, got %d", len(limited))
	}

	if _, err := ListImages(filepath.Join(dir, "missing"), 0); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "nonexistent.png"))
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos    string
		name    string
		args    []string
		wantErr bool
	}{
		{OSDarwin, OpenCommand, []string{"/tmp/order.toml"}, false},
		{OSLinux, XDGOpenCommand, []string{"/tmp/order.toml"}, false},
		{OSFreeBSD, XDGOpenCommand, []string{"/tmp/order.toml"}, false},
		{OSWindows, CmdCommand, []string{WindowsCmdFlag, StartCommand, "", "/tmp/order.toml"}, false},
		{"plan9", "", nil, true},
	}

	for _, test := range tests {
		name, args, err := openCommand(test.goos, "/tmp/order.toml")
		if (err != nil) != test.wantErr {
			t.Errorf("openCommand(%s) error = %v, wantErr %v", test.goos, err, test.wantErr)
			continue
		}
		if name != test.name || strings.Join(args, "|") != strings.Join(test.args, "|") {
			t.Errorf("openCommand(%s) = %s %v, expected %s %v", test.goos, name, args, test.name, test.args)
		}
	}
}
