package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envFixture struct {
	Addr string `env:"CMD_TEST_ADDR" envDefault:"127.0.0.1:8080"`
	Mode string `env:"CMD_TEST_MODE" envDefault:"serve"`
}

func TestParseConfigAppliesEnvOverDefaults(t *testing.T) {
	t.Setenv("CMD_TEST_ADDR", ":9000")

	var cfg envFixture
	require.NoError(t, ParseConfig(&cfg))
	assert.Equal(t, envFixture{Addr: ":9000", Mode: "serve"}, cfg)
}

func TestParseConfigNilTarget(t *testing.T) {
	assert.EqualError(t, ParseConfig[envFixture](nil), "config target is required")
}

func TestServiceRunReturnsRunError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0
	err := Service{Name: ServiceWeb}.Run(context.Background(), func(context.Context) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestServiceRunValidatesInputs(t *testing.T) {
	t.Parallel()

	noop := func(context.Context) error { return nil }
	assert.EqualError(t, Service{Name: "  "}.Run(context.Background(), noop), "service name is required")
	assert.EqualError(t, Service{Name: ServiceSeed}.Run(context.Background(), nil), "run function is required")
}
