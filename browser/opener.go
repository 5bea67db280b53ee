// Package browser opens saved articles with the host's default handler.
package browser

import (
	"os/exec"
	"runtime"

	mediumreader "github.com/abdukarimovhm/medium-reader"
)

// Ensure Opener implements mediumreader.Opener at compile time.
var _ mediumreader.Opener = (*Opener)(nil)

// Opener launches the platform's default-application mechanism for a file.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open hands the path to the host's opener. The error is informational;
// callers report it without aborting, the saved file is already on disk.
func (o *Opener) Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return mediumreader.Errorf(mediumreader.EUNAVAILABLE, "open %s: %v", path, err)
	}
	// Detach: the viewer's lifetime is not ours to manage.
	go func() { _ = cmd.Wait() }()
	return nil
}
