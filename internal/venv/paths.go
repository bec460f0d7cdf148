package venv

import (
	"path/filepath"
	"runtime"
)

// Paths are the OS-specific locations inside a virtual environment
type Paths struct {
	Python  string
	Pip     string
	Scripts string
}

// PathsFor returns the executable locations for the venv at dir on the
// current OS
func PathsFor(dir string) Paths {
	return pathsFor(dir, runtime.GOOS)
}

func pathsFor(dir, goos string) Paths {
	if goos == "windows" {
		scripts := filepath.Join(dir, "Scripts")
		return Paths{
			Python:  filepath.Join(scripts, "python.exe"),
			Pip:     filepath.Join(scripts, "pip.exe"),
			Scripts: scripts,
		}
	}

	scripts := filepath.Join(dir, "bin")
	return Paths{
		Python:  filepath.Join(scripts, "python"),
		Pip:     filepath.Join(scripts, "pip"),
		Scripts: scripts,
	}
}
