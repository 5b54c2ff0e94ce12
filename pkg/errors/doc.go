// Package errors provides the coded errors used across the generator.
//
// Generation has a small taxonomy:
//   - InvalidArgument: the configuration handed to a generation call is invalid
//   - FailedPrecondition: the orchestrator is missing a required module or theme tile
//   - NotFound: a strategy name is not registered
//   - Internal: a collaborator (painter, placement) failed; the cause is preserved
//
// A room placer that runs out of attempts is not an error and never produces one.
//
// Creating errors:
//
//	err := errors.InvalidArgumentf("width must be at least %d", 8)
//
// Wrapping collaborator failures keeps the cause reachable through the
// standard library's errors.Is:
//
//	if err := painter.Paint(ctx, grid, theme, offset); err != nil {
//	    return errors.Wrap(err, "failed to paint dungeon")
//	}
//
// Collecting several field errors at once:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateMin("width", cfg.Width, 8, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
