package utils_test

import (
	"testing"

	"github.com/jrsteele09/go-blog-client/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestSplitTrimmed(t *testing.T) {
	require.Equal(t, []string{"go", "web dev"}, utils.SplitTrimmed(" go, ,web dev ,", ","))
	require.Empty(t, utils.SplitTrimmed("", ","))
}

func TestLowered(t *testing.T) {
	require.Equal(t, []string{"go", "tech"}, utils.Lowered([]string{"Go", "TECH"}))
}

func TestPtr(t *testing.T) {
	v := 3
	p := utils.Ptr(v)
	v = 4
	require.Equal(t, 3, *p)
}
