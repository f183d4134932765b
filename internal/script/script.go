// Package script executes Starlark init sequence scripts against write lists.
package script

import (
	"context"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/zynqinit/internal/registry"
	"github.com/retroenv/zynqinit/internal/writelist"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const defaultSection = "init"

// Runner executes an init sequence script. The script builds ordered write
// lists through the write, poll and section builtins:
//
//	section("pll")
//	write("slcr", "slcr_unlock", "unlock_key", 0xdf0d)
//	write("slcr", "arm_pll_ctrl", "pll_bypass_force", 1)
//	poll("slcr", "pll_status", "arm_pll_lock")
type Runner struct {
	registry *registry.Registry
	logger   *log.Logger

	lists   []*writelist.List
	current *writelist.List
}

// New creates a new script runner.
func New(reg *registry.Registry, logger *log.Logger) *Runner {
	r := &Runner{
		registry: reg,
		logger:   logger,
	}
	r.current = writelist.New(defaultSection, reg, logger)
	r.lists = []*writelist.List{r.current}
	return r
}

// Lists returns the write lists built by the script, in section order.
func (r *Runner) Lists() []*writelist.List {
	return r.lists
}

// RunFile executes the script file.
func (r *Runner) RunFile(ctx context.Context, filename string) error {
	return r.run(ctx, filename, nil)
}

// Run executes script source, filename is used for diagnostics only.
func (r *Runner) Run(ctx context.Context, filename string, src string) error {
	return r.run(ctx, filename, src)
}

func (r *Runner) run(ctx context.Context, filename string, src any) error {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			r.logger.Info(msg, log.String("script", filename))
		},
	}
	opts := &syntax.FileOptions{}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel("interrupted")
		case <-done:
		}
	}()

	predeclared := starlark.StringDict{
		"write":   starlark.NewBuiltin("write", r.writeBuiltin),
		"poll":    starlark.NewBuiltin("poll", r.pollBuiltin),
		"section": starlark.NewBuiltin("section", r.sectionBuiltin),
	}

	if _, err := starlark.ExecFileOptions(opts, thread, filename, src, predeclared); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("executing script %s: %w", filename, err)
	}
	return nil
}

// writeBuiltin implements write(block, entry, field, value=0, poll=False,
// fullreg=False). It returns False for unresolved references, the failed
// write is skipped and execution continues.
func (r *Runner) writeBuiltin(_ *starlark.Thread, b *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

	var block, entry, field string
	value := starlark.MakeInt(0)
	var poll, fullreg bool

	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"block", &block, "entry", &entry, "field?", &field,
		"value?", &value, "poll?", &poll, "fullreg?", &fullreg); err != nil {

		return nil, err
	}
	if field == "" && !fullreg {
		return nil, fmt.Errorf("%s: field name required unless fullreg is set", b.Name())
	}

	data, err := uint32Value(b.Name(), value)
	if err != nil {
		return nil, err
	}

	added := r.current.Add(block, entry, field, data,
		writelist.AddFlags{Poll: poll, FullReg: fullreg})
	return starlark.Bool(added), nil
}

// pollBuiltin implements poll(block, entry, field, value=0), a write with
// the poll flag set.
func (r *Runner) pollBuiltin(_ *starlark.Thread, b *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

	var block, entry, field string
	value := starlark.MakeInt(0)

	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"block", &block, "entry", &entry, "field", &field, "value?", &value); err != nil {
		return nil, err
	}

	data, err := uint32Value(b.Name(), value)
	if err != nil {
		return nil, err
	}

	added := r.current.Add(block, entry, field, data, writelist.AddFlags{Poll: true})
	return starlark.Bool(added), nil
}

// sectionBuiltin implements section(name), starting a new write list.
// Coalescing never crosses a section boundary.
func (r *Runner) sectionBuiltin(_ *starlark.Thread, b *starlark.Builtin,
	args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {

	var name string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
		return nil, err
	}

	list := writelist.New(name, r.registry, r.logger)
	if len(r.current.Operations()) == 0 && r.current.Name() == defaultSection {
		// the implicit first section was never used, replace it
		r.lists[len(r.lists)-1] = list
	} else {
		r.lists = append(r.lists, list)
	}
	r.current = list

	return starlark.None, nil
}

func uint32Value(builtin string, value starlark.Int) (uint32, error) {
	data, ok := value.Uint64()
	if !ok || data > 0xFFFFFFFF {
		return 0, fmt.Errorf("%s: value %s does not fit into 32 bits", builtin, value)
	}
	return uint32(data), nil
}
