// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package annotate

import (
	"strings"

	"github.com/samber/lo"
)

// NormalizeTags turns raw `#tag_name` tokens into tag labels: the leading
// '#' is dropped and underscores become spaces. Order and duplicates are
// kept, and already-normalized labels pass through unchanged.
func NormalizeTags(raw []string) []string {
	return lo.Map(raw, func(tag string, _ int) string {
		return strings.ReplaceAll(strings.TrimPrefix(tag, "#"), "_", " ")
	})
}
