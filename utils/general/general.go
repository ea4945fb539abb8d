package generalutils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"regexp"
	"syscall"
)

type GeneralUtilsInterface interface {
	HandleSignals() context.Context
	PrintResponse(w io.Writer, v any) error
}

type DefaultGeneralUtilsManager struct{}

func (g *DefaultGeneralUtilsManager) HandleSignals() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Printf("Received termination signal: %v\n", sig)
		cancel()
	}()

	return ctx
}

// PrintResponse writes v as indented JSON.
func (g *DefaultGeneralUtilsManager) PrintResponse(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}

func NewGeneralUtilsManager() GeneralUtilsInterface {
	return &DefaultGeneralUtilsManager{}
}

var validNameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{1,120}$`)

// IsValidServiceName reports whether name is usable as a service or folder name.
func IsValidServiceName(name string) bool {
	return validNameRegex.MatchString(name)
}

// IsValidAdminURL reports whether raw is an absolute http(s) URL.
func IsValidAdminURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
