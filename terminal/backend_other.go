//go:build !unix

package terminal

import "errors"

type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error {
	return errors.New("raw ANSI console requires a unix terminal")
}

func (unsupportedBackend) Fini() {}

func (unsupportedBackend) Write([]byte) error { return errors.New("not initialized") }

func (unsupportedBackend) Read(bool) ([]byte, error) { return nil, nil }
