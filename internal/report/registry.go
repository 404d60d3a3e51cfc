package report

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// PreExecFunc is a callback invoked immediately before a command runs.
type PreExecFunc func(ctx context.Context) error

// PostCommandFunc is a callback invoked after a command finishes,
// before the next prompt. exitCode is the exit status of the command
// that just completed, captured at the post-command point before any
// callback runs.
type PostCommandFunc func(ctx context.Context, exitCode int) error

// Registry is an explicit ordered list of lifecycle callbacks.
//
// Shell rc files traditionally chain hooks by string-concatenating
// command payloads into a single variable that is later evaluated.
// The Registry replaces that with registered callback handles invoked
// in registration order, with no string-based code composition.
//
// Registration is idempotent by name: registering a name that already
// exists replaces the callback in place, preserving its position in
// the order. Re-running an initializer therefore never causes
// duplicate marker emission per command.
//
// Callback errors are logged and swallowed — a failing hook degrades
// to "no state reporting", never to an aborted shell session.
type Registry struct {
	mu sync.Mutex

	log *zap.Logger

	preExec     []namedPreExec
	postCommand []namedPostCommand
}

// namedPreExec pairs a pre-exec callback with its registration name.
type namedPreExec struct {
	name string
	fn   PreExecFunc
}

// namedPostCommand pairs a post-command callback with its registration name.
type namedPostCommand struct {
	name string
	fn   PostCommandFunc
}

// NewRegistry creates an empty Registry. logger may be nil, in which
// case callback failures are silently discarded.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{log: logger}
}

// RegisterPreExec adds (or replaces) a pre-exec callback under name.
// If the name is already registered, the callback is replaced in place
// and its position in the invocation order is unchanged.
func (r *Registry) RegisterPreExec(name string, fn PreExecFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.preExec {
		if r.preExec[i].name == name {
			r.preExec[i].fn = fn
			return
		}
	}
	r.preExec = append(r.preExec, namedPreExec{name: name, fn: fn})
}

// RegisterPostCommand adds (or replaces) a post-command callback under
// name, with the same replace-in-place idempotence as RegisterPreExec.
func (r *Registry) RegisterPostCommand(name string, fn PostCommandFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.postCommand {
		if r.postCommand[i].name == name {
			r.postCommand[i].fn = fn
			return
		}
	}
	r.postCommand = append(r.postCommand, namedPostCommand{name: name, fn: fn})
}

// RunPreExec invokes every registered pre-exec callback in
// registration order. Errors are logged and do not stop the chain.
func (r *Registry) RunPreExec(ctx context.Context) {
	for _, h := range r.preExecSnapshot() {
		if err := h.fn(ctx); err != nil {
			r.log.Warn("pre-exec hook failed",
				zap.String("hook", h.name),
				zap.Error(err))
		}
	}
}

// RunPostCommand invokes every registered post-command callback in
// registration order, passing the captured exit code to each. Errors
// are logged and do not stop the chain.
func (r *Registry) RunPostCommand(ctx context.Context, exitCode int) {
	for _, h := range r.postCommandSnapshot() {
		if err := h.fn(ctx, exitCode); err != nil {
			r.log.Warn("post-command hook failed",
				zap.String("hook", h.name),
				zap.Int("exitCode", exitCode),
				zap.Error(err))
		}
	}
}

// PreExecNames returns the registered pre-exec hook names in
// invocation order. Used by status output and tests.
func (r *Registry) PreExecNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.preExec))
	for _, h := range r.preExec {
		names = append(names, h.name)
	}
	return names
}

// PostCommandNames returns the registered post-command hook names in
// invocation order.
func (r *Registry) PostCommandNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.postCommand))
	for _, h := range r.postCommand {
		names = append(names, h.name)
	}
	return names
}

// preExecSnapshot copies the hook list under the lock so callbacks run
// without holding it — a callback may itself register hooks.
func (r *Registry) preExecSnapshot() []namedPreExec {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]namedPreExec, len(r.preExec))
	copy(out, r.preExec)
	return out
}

// postCommandSnapshot copies the post-command hook list under the lock.
func (r *Registry) postCommandSnapshot() []namedPostCommand {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]namedPostCommand, len(r.postCommand))
	copy(out, r.postCommand)
	return out
}
