package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultCfg.Validate())

	cfg := DefaultCfg
	cfg.RangeStep = 0
	require.ErrorContains(t, cfg.Validate(), "RangeStep")

	cfg = DefaultCfg
	cfg.SortSize = 0
	require.ErrorContains(t, cfg.Validate(), "SortSize")
}
