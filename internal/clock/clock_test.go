package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystemNowIsUTC(t *testing.T) {
	clk := NewSystem(2 * time.Hour)
	now := clk.Now()
	require.Equal(t, time.UTC, now.Location())
	require.WithinDuration(t, time.Now().UTC(), now, time.Second)
}

func TestExpiryFromAddsFixedDuration(t *testing.T) {
	clk := NewSystem(2 * time.Hour)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, now.Add(2*time.Hour), clk.ExpiryFrom(now))
}

func TestExpiryFromRespectsConfiguredTTL(t *testing.T) {
	clk := NewSystem(15 * time.Minute)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, now.Add(15*time.Minute), clk.ExpiryFrom(now))
}
