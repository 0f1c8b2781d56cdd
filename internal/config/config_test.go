package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBytes_FullConfig(t *testing.T) {
	src := `
logging {
  level  = "debug"
  format = "json"
}

term_store {
  dsn = "cook:secret@tcp(localhost:3306)/vocabulary?parseTime=true"
}

document_store {
  uri      = "mongodb://localhost:27017"
  database = "cookbook"
}

validation {
  workers = 8
}
`
	f, err := LoadBytes([]byte(src), "config.hcl")
	require.NoError(t, err)

	assert.Equal(t, "debug", f.Logging.Level)
	assert.Equal(t, "json", f.Logging.Format)
	require.NotNil(t, f.TermStore)
	assert.Contains(t, f.TermStore.DSN, "vocabulary")
	require.NotNil(t, f.DocumentStore)
	assert.Equal(t, "cookbook", f.DocumentStore.Database)
	assert.Equal(t, DefaultCollection, f.DocumentStore.Collection)
	assert.Equal(t, 8, f.Validation.Workers)
}

func TestLoadBytes_AppliesDefaults(t *testing.T) {
	f, err := LoadBytes([]byte(""), "empty.hcl")
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, f.Logging.Level)
	assert.Equal(t, DefaultLogFormat, f.Logging.Format)
	assert.Equal(t, DefaultWorkers, f.Validation.Workers)
	assert.Nil(t, f.TermStore)
	assert.Nil(t, f.DocumentStore)
}

func TestLoadBytes_EnvInterpolation(t *testing.T) {
	t.Setenv("COOKGRAPH_TEST_DSN", "cook:pw@tcp(db:3306)/terms")

	src := `
term_store {
  dsn = env.COOKGRAPH_TEST_DSN
}
`
	f, err := LoadBytes([]byte(src), "config.hcl")
	require.NoError(t, err)
	require.NotNil(t, f.TermStore)
	assert.Equal(t, "cook:pw@tcp(db:3306)/terms", f.TermStore.DSN)
}

func TestLoadBytes_RejectsMalformedHCL(t *testing.T) {
	_, err := LoadBytes([]byte(`term_store {`), "bad.hcl")
	require.Error(t, err)
}

func TestLoadBytes_RejectsUnknownBlock(t *testing.T) {
	_, err := LoadBytes([]byte(`telemetry { endpoint = "x" }`), "bad.hcl")
	require.Error(t, err)
}
