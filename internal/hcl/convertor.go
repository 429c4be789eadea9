package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/samudra/internal/ctxlog"
)

// decodeStringList evaluates expr and converts the result to []string. A
// missing attribute yields nil.
func decodeStringList(ctx context.Context, expr hcl.Expression) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value must be known at load time")
	}

	target := cty.List(cty.String)
	converted, err := convert.Convert(val, target)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), target.FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	var out []string
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return nil, err
	}
	return out, nil
}
