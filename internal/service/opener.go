package service

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"

	"github.com/evolveer/workandprojectnotebook/internal/domain"
	"github.com/evolveer/workandprojectnotebook/internal/domain/services"
)

// pathOpener shells out to the host OS's default file/directory opener.
// Best effort only: failure is reported to the caller, never fatal.
type pathOpener struct {
	logger *slog.Logger
	goos   string
	run    func(name string, args ...string) error
}

// NewPathOpener creates a path opener for the current platform
func NewPathOpener(logger *slog.Logger) services.PathOpener {
	return &pathOpener{
		logger: logger,
		goos:   runtime.GOOS,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Open invokes the platform opener on path
func (o *pathOpener) Open(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: path is required", domain.ErrValidation)
	}

	var (
		name string
		args []string
	)
	switch o.goos {
	case "windows":
		name, args = "explorer", []string{path}
	case "darwin":
		name, args = "open", []string{path}
	default:
		name, args = "xdg-open", []string{path}
	}

	if err := o.run(name, args...); err != nil {
		o.logger.Warn("failed to open path",
			"path", path,
			"opener", name,
			"error", err,
		)
		return fmt.Errorf("%w: open %s with %s: %v", domain.ErrIO, path, name, err)
	}

	o.logger.Debug("opened path", "path", path, "opener", name)

	return nil
}
