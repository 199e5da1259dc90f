package state

import (
	"fmt"
	"time"

	"golang.org/x/text/encoding/ianaindex"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// SetCodePage selects character set for decoding non UTF-8 inputs by its IANA
// name, empty name resets it.
func (e *LocalEnv) SetCodePage(name string) error {
	if len(name) == 0 {
		e.CodePage = nil
		return nil
	}
	cp, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return fmt.Errorf("unknown character set %q: %w", name, err)
	}
	if cp == nil {
		// known name without implementation
		return fmt.Errorf("unsupported character set %q", name)
	}
	e.CodePage = cp
	return nil
}

// CodePageName returns IANA name of selected character set or empty string.
func (e *LocalEnv) CodePageName() string {
	if e.CodePage == nil {
		return ""
	}
	n, _ := ianaindex.IANA.Name(e.CodePage)
	return n
}
