package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/reconcile/internal/errors"
	"github.com/vango-dev/reconcile/pkg/vdom"
)

// patchDoc is the JSON form of a patch.
type patchDoc struct {
	vdom.Patch
	Node *nodeDoc `json:"node,omitempty"`
}

// diffResult is printed by the diff command.
type diffResult struct {
	vdom.ChildUpdates[nodeDoc]
	Patches []patchDoc `json:"patches,omitempty"`
}

func diffCmd(a *app) *cobra.Command {
	var (
		oldPath   string
		newPath   string
		patches   bool
		parentTag string
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare two child lists by key",
		Long: `Compare two JSON arrays of nodes by key.

Each node is an object such as {"key": "a", "tag": "li", "text": "Apples"}.
Keys may be strings or numbers; nodes without a key never match.

The result lists the old positions that were removed, the new positions
that were added, and "all": the new list followed by the removed nodes.`,
		Example: `  vango-reconcile diff --old before.json --new after.json
  cat after.json | vango-reconcile diff --old before.json --new - --patches`,
		Args: cobra.NoArgs,
		RunE: a.guard(func(cmd *cobra.Command, args []string) error {
			if newPath == "" {
				return errors.Newf(errors.CategoryCLI, "--new is required")
			}
			if oldPath == "-" && newPath == "-" {
				return errors.Newf(errors.CategoryCLI, "only one of --old and --new can read stdin")
			}

			return traced(cmd.Context(), "diff", func(ctx context.Context, span trace.Span) error {
				next, err := readNodes(newPath, cmd.InOrStdin())
				if err != nil {
					return err
				}
				var prev []nodeDoc
				if oldPath != "" {
					if prev, err = readNodes(oldPath, cmd.InOrStdin()); err != nil {
						return err
					}
				}

				result := diffResult{ChildUpdates: vdom.Updates(next, prev, docKey)}
				if patches {
					result.Patches = treePatches(parentTag, prev, next)
				}

				span.SetAttributes(
					attribute.Int("children.prev", len(prev)),
					attribute.Int("children.next", len(next)),
					attribute.Int("children.added", len(result.Added)),
					attribute.Int("children.removed", len(result.Removed)),
				)
				a.logger.Debug("child updates computed",
					"prev", len(prev),
					"next", len(next),
					"added", result.IndicesToAdd,
					"removed", result.IndicesToRemove)

				if result.Empty() && len(prev) > 0 {
					a.logger.Info("no children added or removed")
				}

				return a.writeJSON(cmd.OutOrStdout(), result)
			})
		}),
	}

	cmd.Flags().StringVar(&oldPath, "old", "", "Previous child list (JSON file, - for stdin); empty list when omitted")
	cmd.Flags().StringVar(&newPath, "new", "", "Next child list (JSON file, - for stdin)")
	cmd.Flags().BoolVar(&patches, "patches", false, "Also print the DOM patches for a parent holding the lists")
	cmd.Flags().StringVar(&parentTag, "parent", "ul", "Tag of the parent element used with --patches")

	return cmd
}

// treePatches diffs two parent elements holding prev and next as children.
// The previous tree gets hydration IDs first so patches can address nodes.
func treePatches(tag string, prev, next []nodeDoc) []patchDoc {
	toVNode := func(_ int, d nodeDoc) *vdom.VNode { return d.toVNode() }
	prevRoot := vdom.El(tag, vdom.Range(prev, toVNode))
	nextRoot := vdom.El(tag, vdom.Range(next, toVNode))

	vdom.AssignHIDs(prevRoot, vdom.NewHIDGenerator())

	raw := vdom.Diff(prevRoot, nextRoot)
	docs := make([]patchDoc, len(raw))
	for i, p := range raw {
		docs[i] = patchDoc{Patch: p, Node: fromVNode(p.Node)}
	}
	return docs
}
