package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/vk/cookgraph/internal/ctxlog"
	"github.com/vk/cookgraph/internal/fsutil"
	"github.com/vk/cookgraph/internal/recipe"
	"github.com/vk/cookgraph/internal/store/mariadb"
	"github.com/vk/cookgraph/internal/store/mongodb"
	"github.com/vk/cookgraph/internal/symbol"
)

// source is one recipe document queued for validation, tagged with where it
// came from.
type source struct {
	name string
	doc  *recipe.Document
}

// Run executes the main application logic: build the symbol registry, gather
// every requested recipe document, and validate them concurrently. Individual
// validation failures are reported and counted, never aborting the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	reg, err := a.buildRegistry(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("Symbol registry ready.", "symbols", reg.Len())

	sources, err := a.collectSources(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Recipe documents collected.", "count", len(sources))

	loader := recipe.NewLoader(reg)
	results := make([]error, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			_, err := loader.Load(gctx, src.doc)
			results[i] = err
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	failed := 0
	for i, src := range sources {
		if results[i] != nil {
			failed++
			fmt.Fprintf(a.outW, "INVALID  %s\n  %v\n", src.name, results[i])
		} else {
			fmt.Fprintf(a.outW, "VALID    %s\n", src.name)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d recipes failed validation", failed, len(sources))
	}
	a.logger.Info("All recipes validated.", "count", len(sources))
	return nil
}

// buildRegistry loads the full term vocabulary from the relational store.
func (a *App) buildRegistry(ctx context.Context) (*symbol.Registry, error) {
	if a.site.TermStore == nil {
		return nil, errors.New("no term_store block configured; the symbol registry needs its database")
	}
	store, err := mariadb.Open(a.site.TermStore.DSN)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("term store unreachable: %w", err)
	}
	return store.LoadRegistry(ctx)
}

// collectSources resolves every configured input to a decoded document.
// Files and directories are read locally; 24-character hex strings and bare
// integers are fetched from the document store.
func (a *App) collectSources(ctx context.Context) ([]source, error) {
	var (
		sources []source
		docs    *mongodb.Store
	)
	defer func() {
		if docs != nil {
			_ = docs.Close(ctx)
		}
	}()

	openDocStore := func() (*mongodb.Store, error) {
		if docs != nil {
			return docs, nil
		}
		if a.site.DocumentStore == nil {
			return nil, errors.New("input refers to the document store, but no document_store block is configured")
		}
		var err error
		docs, err = mongodb.Open(ctx, a.site.DocumentStore.URI, a.site.DocumentStore.Database, a.site.DocumentStore.Collection)
		return docs, err
	}

	for _, input := range a.cfg.Inputs {
		info, statErr := os.Stat(input)
		switch {
		case statErr == nil && info.IsDir():
			files, err := fsutil.FindFilesByExtension(input, ".json")
			if err != nil {
				return nil, err
			}
			for _, file := range files {
				doc, err := decodeFile(file)
				if err != nil {
					return nil, err
				}
				sources = append(sources, source{name: file, doc: doc})
			}

		case statErr == nil:
			doc, err := decodeFile(input)
			if err != nil {
				return nil, err
			}
			sources = append(sources, source{name: input, doc: doc})

		case isObjectID(input):
			store, err := openDocStore()
			if err != nil {
				return nil, err
			}
			doc, err := store.FetchByObjectID(ctx, input)
			if err != nil {
				return nil, err
			}
			sources = append(sources, source{name: input, doc: doc})

		default:
			id, convErr := strconv.Atoi(input)
			if convErr != nil {
				return nil, fmt.Errorf("input %q is neither a file, a directory, a recipe id nor an object id", input)
			}
			store, err := openDocStore()
			if err != nil {
				return nil, err
			}
			doc, err := store.FetchByRecipeID(ctx, id)
			if err != nil {
				return nil, err
			}
			sources = append(sources, source{name: input, doc: doc})
		}
	}
	return sources, nil
}

func decodeFile(path string) (*recipe.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe file: %w", err)
	}
	defer f.Close()

	doc, err := recipe.DecodeDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// isObjectID reports whether s looks like a 24-character hex document id.
func isObjectID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
