package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/DiscreteTom/clonesure/pkg"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// readSource returns the contents of the named source file, or of stdin when
// the name is "-".
func readSource(name string) (string, error) {
	var (
		data []byte
		err  error
	)

	if name == stdinSource {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}

	if err != nil {
		return "", fmt.Errorf("%w: %w", pkg.ErrReadInput, err)
	}

	return string(data), nil
}
