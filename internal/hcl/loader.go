package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/samudra/internal/config"
	"github.com/vk/samudra/internal/ctxlog"
	"github.com/vk/samudra/internal/fsutil"
	"github.com/vk/samudra/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and merges their blocks into
// a single model. Labels must be unique across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{}

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	namespaceSources := make(map[string]string)
	wordClassSources := make(map[string]string)

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Namespaces {
			if prev, dup := namespaceSources[block.Name]; dup {
				return nil, fmt.Errorf("namespace %q in %s is already declared in %s", block.Name, file, prev)
			}
			ns, err := l.translateNamespace(ctx, block, file)
			if err != nil {
				return nil, err
			}
			namespaceSources[ns.Name] = file
			model.Namespaces = append(model.Namespaces, ns)
		}
		for _, block := range root.WordClasses {
			if prev, dup := wordClassSources[block.ID]; dup {
				return nil, fmt.Errorf("word_class %q in %s is already declared in %s", block.ID, file, prev)
			}
			wordClassSources[block.ID] = file
			model.WordClasses = append(model.WordClasses, l.translateWordClass(block, file))
		}
	}

	logger.Debug("HCL loading complete.", "namespaces", len(model.Namespaces), "word_classes", len(model.WordClasses))
	return model, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				add(path)
			}
			continue
		}

		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error walking path %s: %w", path, err)
		}
		for _, f := range files {
			add(f)
		}
	}
	return allFiles, nil
}
