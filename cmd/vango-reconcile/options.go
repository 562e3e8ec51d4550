package main

import (
	"context"
	"reflect"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/reconcile/internal/errors"
	"github.com/vango-dev/reconcile/pkg/vango"
)

func optionsCmd(a *app) *cobra.Command {
	var (
		defaultsPath string
		optionPaths  []string
	)

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Resolve sparse options against defaults",
		Long: `Resolve a sparse options object against a defaults object.

Every key of the defaults appears in the result, taking the value from the
options when present. Keys unknown to the defaults are dropped.

--options may be repeated to resolve a sequence of option sets the way a
component would across renders; one result is printed per set. Identical
consecutive sets reuse the previous result.`,
		Example: `  vango-reconcile options --defaults defaults.json --options props.json
  vango-reconcile options --defaults defaults.json --options a.json --options b.json`,
		Args: cobra.NoArgs,
		RunE: a.guard(func(cmd *cobra.Command, args []string) error {
			if defaultsPath == "" {
				return errors.Newf(errors.CategoryCLI, "--defaults is required")
			}
			stdin := 0
			for _, p := range append([]string{defaultsPath}, optionPaths...) {
				if p == "-" {
					stdin++
				}
			}
			if stdin > 1 {
				return errors.Newf(errors.CategoryCLI, "only one of --defaults and --options can read stdin")
			}

			return traced(cmd.Context(), "options", func(ctx context.Context, span trace.Span) error {
				defaults, err := readObject(defaultsPath, cmd.InOrStdin())
				if err != nil {
					return err
				}
				if defaults == nil {
					return errors.New("E010").
						WithDetail(defaultsPath + " holds null; defaults must be a JSON object")
				}

				sets := make([]vango.Options, 0, max(len(optionPaths), 1))
				for _, p := range optionPaths {
					opts, err := readObject(p, cmd.InOrStdin())
					if err != nil {
						return err
					}
					sets = append(sets, opts)
				}
				if len(sets) == 0 {
					sets = append(sets, nil)
				}

				results, reused := resolveSequence(defaults, sets)

				span.SetAttributes(
					attribute.Int("options.defaults", len(defaults)),
					attribute.Int("options.sets", len(sets)),
					attribute.Int("options.reused", reused),
				)
				a.logger.Debug("options resolved", "sets", len(sets), "reused", reused)

				for _, set := range sets {
					for key := range set {
						if _, known := defaults[key]; !known {
							warn(cmd, "ignoring unknown option %q", key)
						}
					}
				}

				if len(results) == 1 {
					return a.writeJSON(cmd.OutOrStdout(), results[0])
				}
				return a.writeJSON(cmd.OutOrStdout(), results)
			})
		}),
	}

	cmd.Flags().StringVar(&defaultsPath, "defaults", "", "Defaults object (JSON file, - for stdin)")
	cmd.Flags().StringArrayVar(&optionPaths, "options", nil, "Options object (JSON file, - for stdin); repeatable")

	return cmd
}

// resolveSequence resolves each option set with one component owner, the
// way successive renders would, and counts results reused from the
// previous set.
func resolveSequence(defaults vango.Options, sets []vango.Options) ([]vango.Options, int) {
	owner := vango.NewOwner(nil)
	defer owner.Dispose()

	results := make([]vango.Options, 0, len(sets))
	reused := 0
	for _, set := range sets {
		owner.Render(func() {
			merged := vango.UseOptions(set, defaults)
			if n := len(results); n > 0 && sameOptions(results[n-1], merged) {
				reused++
			}
			results = append(results, merged)
		})
	}
	return results, reused
}

// sameOptions reports whether a and b are the same map, not just equal.
func sameOptions(a, b vango.Options) bool {
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}
