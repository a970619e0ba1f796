package report

import (
	"context"
	"fmt"
	"os"

	"quizdrill/internal/session"
)

// WriteHTML renders a finished session to an HTML file.
func WriteHTML(ctx context.Context, path string, state session.State) error {
	html, err := RenderHTML(ctx, state)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
