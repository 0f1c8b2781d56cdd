package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Defaults applied when the corresponding setting is absent.
const (
	DefaultCollection = "recipes"
	DefaultWorkers    = 4
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// File is the decoded site configuration.
type File struct {
	Logging       *Logging       `hcl:"logging,block"`
	TermStore     *TermStore     `hcl:"term_store,block"`
	DocumentStore *DocumentStore `hcl:"document_store,block"`
	Validation    *Validation    `hcl:"validation,block"`
}

// Logging selects the slog level and handler format.
type Logging struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// TermStore points at the relational database holding the canonical term
// vocabulary.
type TermStore struct {
	DSN string `hcl:"dsn"`
}

// DocumentStore points at the document database holding recipe documents.
type DocumentStore struct {
	URI        string `hcl:"uri"`
	Database   string `hcl:"database"`
	Collection string `hcl:"collection,optional"`
}

// Validation tunes the recipe validation run.
type Validation struct {
	Workers int `hcl:"workers,optional"`
}

// Load parses and decodes one HCL configuration file.
func Load(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return decode(hclFile.Body)
}

// LoadBytes decodes configuration held in memory. The filename is only used
// in diagnostics.
func LoadBytes(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	return decode(hclFile.Body)
}

func decode(body hcl.Body) (*File, error) {
	var f File
	if diags := gohcl.DecodeBody(body, evalContext(), &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %w", diags)
	}
	f.applyDefaults()
	return &f, nil
}

// evalContext exposes the process environment to HCL expressions as the
// `env` object, so files can say dsn = env.COOKGRAPH_DB_DSN.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}

	vars := make(map[string]cty.Value)
	if len(env) > 0 {
		vars["env"] = cty.ObjectVal(env)
	}
	return &hcl.EvalContext{Variables: vars}
}

func (f *File) applyDefaults() {
	if f.Logging == nil {
		f.Logging = &Logging{}
	}
	if f.Logging.Level == "" {
		f.Logging.Level = DefaultLogLevel
	}
	if f.Logging.Format == "" {
		f.Logging.Format = DefaultLogFormat
	}
	if f.DocumentStore != nil && f.DocumentStore.Collection == "" {
		f.DocumentStore.Collection = DefaultCollection
	}
	if f.Validation == nil {
		f.Validation = &Validation{}
	}
	if f.Validation.Workers <= 0 {
		f.Validation.Workers = DefaultWorkers
	}
}
