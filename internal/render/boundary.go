package render

import (
	"fmt"
	"io"
	"log/slog"
)

// Boundary is the top-level guard around view code. Any panic escaping
// a view is caught here, logged, and replaced with a fallback view
// offering a retry, so a rendering bug can never take the whole
// console down.
type Boundary struct {
	logger *slog.Logger
}

// NewBoundary creates a Boundary.
func NewBoundary(logger *slog.Logger) *Boundary {
	return &Boundary{logger: logger}
}

// Render runs view, writing its output to w. A panic inside view is
// converted into an error after the fallback view is written; the
// caller decides whether to retry.
func (b *Boundary) Render(w io.Writer, name string, view func(io.Writer) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("view panicked",
				slog.String("view", name),
				slog.Any("panic", r),
			)
			fmt.Fprintln(w, "Something went wrong while rendering this view.")
			fmt.Fprintln(w, "Type 'retry' to try again.")
			err = fmt.Errorf("view %s panicked: %v", name, r)
		}
	}()
	return view(w)
}
