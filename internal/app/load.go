package app

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/vk/samudra/internal/annotate"
	"github.com/vk/samudra/internal/config"
	"github.com/vk/samudra/internal/ctxlog"
	"github.com/vk/samudra/internal/lexicon"
)

// schemaFromModel builds the field allow-list. A model without namespaces
// keeps the built-in default.
func schemaFromModel(ctx context.Context, model *config.Model) (annotate.Schema, error) {
	logger := ctxlog.FromContext(ctx)
	if len(model.Namespaces) == 0 {
		logger.Debug("No namespaces configured, using the default schema.")
		return annotate.DefaultSchema(), nil
	}

	namespaces := lo.Map(model.Namespaces, func(ns *config.Namespace, _ int) annotate.Namespace {
		return annotate.Namespace{
			Name:    ns.Name,
			Kind:    ns.Kind,
			Subkeys: ns.Subkeys,
			Open:    ns.Open,
		}
	})
	schema, err := annotate.NewSchema(namespaces...)
	if err != nil {
		return annotate.Schema{}, fmt.Errorf("invalid namespace configuration: %w", err)
	}
	return schema, nil
}

// registryFromModel builds the word class registry. An empty registry
// accepts any word class.
func registryFromModel(ctx context.Context, model *config.Model) (*lexicon.Registry, error) {
	logger := ctxlog.FromContext(ctx)

	classes := make([]lexicon.WordClass, 0, len(model.WordClasses))
	for _, wc := range model.WordClasses {
		class, err := lexicon.NewWordClass(wc.ID, wc.Name, wc.Description)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", wc.Source, err)
		}
		classes = append(classes, class)
	}

	registry, err := lexicon.NewRegistry(classes...)
	if err != nil {
		return nil, fmt.Errorf("invalid word class configuration: %w", err)
	}
	if registry.Len() == 0 {
		logger.Debug("No word classes configured, any word class is accepted.")
	}
	return registry, nil
}
