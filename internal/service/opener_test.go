package service

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/evolveer/workandprojectnotebook/internal/domain"
)

func TestPathOpenerCommandPerPlatform(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "xdg-open"},
		{"darwin", "open"},
		{"windows", "explorer"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			var gotName string
			o := &pathOpener{
				logger: slog.New(slog.DiscardHandler),
				goos:   tt.goos,
				run: func(name string, args ...string) error {
					gotName = name
					return nil
				},
			}

			if err := o.Open("/some/path"); err != nil {
				t.Fatalf("open: %v", err)
			}
			if gotName != tt.want {
				t.Errorf("opener = %q, want %q", gotName, tt.want)
			}
		})
	}
}

func TestPathOpenerFailureIsIOError(t *testing.T) {
	o := &pathOpener{
		logger: slog.New(slog.DiscardHandler),
		goos:   "linux",
		run: func(name string, args ...string) error {
			return errors.New("no such opener")
		},
	}

	err := o.Open("/some/path")
	if !errors.Is(err, domain.ErrIO) {
		t.Errorf("error = %v, want ErrIO", err)
	}
}

func TestPathOpenerEmptyPath(t *testing.T) {
	o := &pathOpener{
		logger: slog.New(slog.DiscardHandler),
		goos:   "linux",
		run: func(name string, args ...string) error {
			t.Fatal("opener invoked for empty path")
			return nil
		},
	}

	if err := o.Open("   "); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}
