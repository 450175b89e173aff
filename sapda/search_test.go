package sapda_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odrh20/sapda/sapda"
	"github.com/odrh20/sapda/sapda/fixtures"
)

func TestRun_AnBnCn(t *testing.T) {
	a, err := fixtures.AnBnCn()
	require.NoError(t, err)

	accepted := []string{"abc", "aabbcc", "aaabbbccc"}
	for _, w := range accepted {
		trace := sapda.Run(context.Background(), a, w)
		assert.NotNil(t, trace, "expected %q to be accepted", w)
	}

	rejected := []string{"ab", "abcc", "aabbc", "acb", "bac"}
	for _, w := range rejected {
		trace := sapda.Run(context.Background(), a, w)
		assert.Nil(t, trace, "expected %q to be rejected", w)
	}
}

func TestRun_EqualCounts(t *testing.T) {
	a, err := fixtures.EqualCounts()
	require.NoError(t, err)

	assert.NotNil(t, sapda.Run(context.Background(), a, "abc"))
	assert.NotNil(t, sapda.Run(context.Background(), a, "aabbcc"))
	assert.NotNil(t, sapda.Run(context.Background(), a, "cba"))
	assert.Nil(t, sapda.Run(context.Background(), a, "aabbc"))
}

func TestRun_Reduplication(t *testing.T) {
	a, err := fixtures.Reduplication()
	require.NoError(t, err)

	assert.NotNil(t, sapda.Run(context.Background(), a, "ab$ab"))
	assert.NotNil(t, sapda.Run(context.Background(), a, "$"))
	assert.Nil(t, sapda.Run(context.Background(), a, "ab$ba"))
}

func TestRun_PowersOfFour(t *testing.T) {
	a, err := fixtures.PowersOfFour()
	require.NoError(t, err)

	assert.NotNil(t, sapda.Run(context.Background(), a, "0000"))
	assert.Nil(t, sapda.Run(context.Background(), a, "00000"))
}

func TestRun_AnBn(t *testing.T) {
	a, err := fixtures.AnBn()
	require.NoError(t, err)

	assert.NotNil(t, sapda.Run(context.Background(), a, sapda.Epsilon))
	assert.NotNil(t, sapda.Run(context.Background(), a, "aabb"))
	assert.Nil(t, sapda.Run(context.Background(), a, "aab"))
}

func TestRunBFS_FindsTheSameVerdictAsDFS(t *testing.T) {
	a, err := fixtures.MirrorOrCopy()
	require.NoError(t, err)

	trace := sapda.RunBFS(context.Background(), a, "aaa")
	assert.NotNil(t, trace)
	assert.NotNil(t, sapda.Run(context.Background(), a, "aaa"))
}

func TestRun_RespectsContextDeadline(t *testing.T) {
	a, err := fixtures.ReduplicationNoMarker()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	trace := sapda.Run(ctx, a, "aaaaaaaaaaaaaaaaaaaaab$aaaaaaaaaaaaaaaaaaaaab")
	require.Len(t, trace, 1)
	assert.Equal(t, "timeout", trace[0])
}

func TestRun_MalformedInputIsRejectedWithoutSearching(t *testing.T) {
	a, err := fixtures.AnBnCn()
	require.NoError(t, err)

	assert.Nil(t, sapda.Run(context.Background(), a, "xyz"))
}
