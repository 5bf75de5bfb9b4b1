//go:build !windows

package entity

func NewMemorySource(processName string) (Source, error) {
	return nil, ErrUnsupportedPlatform
}
