package converter_test

import (
	"testing"

	"github.com/galvamailru/chandra/pkg/converter"

	"github.com/stretchr/testify/require"
)

func TestParsePageRange(t *testing.T) {
	pages, err := converter.ParsePageRange("1-5,7,9-12")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 7, 9, 10, 11, 12}, pages)
}

func TestParsePageRangeSingle(t *testing.T) {
	pages, err := converter.ParsePageRange("3")
	require.NoError(t, err)
	require.Equal(t, []int{3}, pages)
}

func TestParsePageRangeEmpty(t *testing.T) {
	pages, err := converter.ParsePageRange("")
	require.NoError(t, err)
	require.Nil(t, pages)

	pages, err = converter.ParsePageRange("   ")
	require.NoError(t, err)
	require.Nil(t, pages)
}

func TestParsePageRangeOverlap(t *testing.T) {
	pages, err := converter.ParsePageRange("3-5,1-4")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, pages)
}

func TestParsePageRangeDuplicates(t *testing.T) {
	pages, err := converter.ParsePageRange("2,2,2")
	require.NoError(t, err)
	require.Equal(t, []int{2}, pages)
}

func TestParsePageRangeUnordered(t *testing.T) {
	pages, err := converter.ParsePageRange("7,1-2")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 7}, pages)
}

func TestParsePageRangeWhitespace(t *testing.T) {
	pages, err := converter.ParsePageRange(" 1 - 3 , 5 ")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 5}, pages)
}

func TestParsePageRangeInvalid(t *testing.T) {
	for _, val := range []string{"0", "-1", "a", "1-", "-", "5-3", "1,,3", "1;3"} {
		_, err := converter.ParsePageRange(val)
		require.Error(t, err, "value %q", val)
	}
}
