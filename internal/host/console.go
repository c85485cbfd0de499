// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/MKhiriev/legacy-vault/internal/utils"
)

// ConsoleFeedback prints alerts to a terminal. Haptic notifications turn
// into a colored marker in front of the next alert.
type ConsoleFeedback struct {
	mu   sync.Mutex
	out  io.Writer
	last NotificationKind
}

// NewConsoleFeedback returns a ConsoleFeedback writing to out.
func NewConsoleFeedback(out io.Writer) *ConsoleFeedback {
	return &ConsoleFeedback{out: out}
}

func (f *ConsoleFeedback) ShowAlert(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var marker string
	switch f.last {
	case NotificationSuccess:
		marker = color.GreenString("✓") + " "
	case NotificationError:
		marker = color.RedString("✗") + " "
	case NotificationWarning:
		marker = color.YellowString("!") + " "
	}
	f.last = ""

	fmt.Fprintln(f.out, marker+msg)
}

func (f *ConsoleFeedback) NotificationOccurred(kind NotificationKind) {
	f.mu.Lock()
	f.last = kind
	f.mu.Unlock()
}

// PromptBiometric stands in for the biometric prompt on a terminal: the user
// confirms with "y". Access is granted on first confirmation and remembered
// for the life of the value.
type PromptBiometric struct {
	mu      sync.Mutex
	in      *bufio.Reader
	out     io.Writer
	granted bool
}

// NewPromptBiometric returns a PromptBiometric reading answers from in.
func NewPromptBiometric(in io.Reader, out io.Writer) *PromptBiometric {
	return &PromptBiometric{in: bufio.NewReader(in), out: out}
}

func (b *PromptBiometric) Available() bool { return true }

func (b *PromptBiometric) AccessGranted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.granted
}

func (b *PromptBiometric) RequestAccess(ctx context.Context, reason string) (bool, error) {
	ok, err := b.confirm(ctx, reason)
	if err != nil {
		return false, err
	}

	b.mu.Lock()
	b.granted = ok
	b.mu.Unlock()
	return ok, nil
}

func (b *PromptBiometric) Authenticate(ctx context.Context, reason string) (BiometricResult, error) {
	ok, err := b.confirm(ctx, reason)
	if err != nil || !ok {
		return BiometricResult{}, err
	}

	return BiometricResult{Authenticated: true, Token: utils.NewToken()}, nil
}

func (b *PromptBiometric) confirm(ctx context.Context, reason string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fmt.Fprintf(b.out, "%s [y/N]: ", reason)

	type answer struct {
		line string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := b.in.ReadString('\n')
		ch <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-ch:
		if a.err != nil && a.line == "" {
			if a.err == io.EOF {
				return false, nil
			}
			return false, a.err
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
