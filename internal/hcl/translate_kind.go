// This file contains the logic for parsing the `kind` keyword of a namespace
// block (e.g. `kind = repeatable`) into an annotate.NamespaceKind.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/samudra/internal/annotate"
	"github.com/vk/samudra/internal/ctxlog"
)

// kindExprToNamespaceKind accepts a bare keyword or, for convenience, a
// quoted string. A missing attribute means singular.
func kindExprToNamespaceKind(ctx context.Context, expr hcl.Expression) (annotate.NamespaceKind, error) {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Kind expression is nil, defaulting to singular.")
		return annotate.Singular, nil
	}

	switch v := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return annotate.Singular, fmt.Errorf("invalid kind keyword: traversal path is not a single identifier")
		}
		rootName := v.Traversal.RootName()
		logger.Debug("Parsing kind expression as a keyword.", "keyword", rootName)
		return annotate.ParseNamespaceKind(rootName)

	default:
		val, diags := expr.Value(nil)
		if diags.HasErrors() {
			return annotate.Singular, diags
		}
		if val.IsNull() {
			return annotate.Singular, nil
		}
		if !val.Type().Equals(cty.String) {
			return annotate.Singular, fmt.Errorf("kind must be 'singular' or 'repeatable', got %s", val.Type().FriendlyName())
		}
		logger.Debug("Parsing kind expression as a string.", "value", val.AsString())
		return annotate.ParseNamespaceKind(val.AsString())
	}
}
