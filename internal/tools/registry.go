package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/narwhalmedia/greenroom/pkg/errors"
	"github.com/narwhalmedia/greenroom/pkg/interfaces"
	"github.com/narwhalmedia/greenroom/pkg/logger"
)

// Args are the decoded JSON arguments of a tool call.
type Args map[string]any

// Handler executes one tool call. Results must be made of JSON-compatible
// values (maps, []any, strings, float64/int, bools, nil).
type Handler func(ctx context.Context, args Args) (any, error)

// Tool is a named operation exposed to agents.
type Tool struct {
	Name        string
	Description string
	Handler     Handler
}

// Registry holds the tools served by the gateway.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]Tool
	logger interfaces.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(logger interfaces.Logger) *Registry {
	return &Registry{
		tools:  make(map[string]Tool),
		logger: logger,
	}
}

// Register adds a tool. Registering a name twice is an error.
func (r *Registry) Register(tool Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tool.Name == "" || tool.Handler == nil {
		return errors.InvalidArgument("tool requires a name and a handler")
	}
	if _, exists := r.tools[tool.Name]; exists {
		return errors.InvalidArgumentf("tool %q already registered", tool.Name)
	}
	r.tools[tool.Name] = tool
	return nil
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns every registered tool sorted by name.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Invoke runs the named tool. Unknown names yield a NOT_FOUND error.
func (r *Registry) Invoke(ctx context.Context, name string, args Args) (any, error) {
	tool, ok := r.Lookup(name)
	if !ok {
		return nil, errors.NotFound(fmt.Sprintf("unknown tool %q", name))
	}
	if args == nil {
		args = Args{}
	}

	log := logger.FromContext(ctx, r.logger).WithFields(interfaces.String("tool", name))
	result, err := tool.Handler(logger.WithContext(ctx, log), args)
	if err != nil {
		log.Warn("Tool call failed",
			interfaces.String("error_type", string(errors.TypeOf(err))),
			interfaces.Error(err))
		return nil, err
	}
	return result, nil
}
