package coord

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromString_ThreeLetterCaseInsensitive(t *testing.T) {
	require.Equal(t, RUB, FromString("rub"))
	require.Equal(t, RUB, FromString("RUB"))
	require.Equal(t, LDF, FromString("Ldf"))
}

func TestFromString_UnderscoreAndDashForms(t *testing.T) {
	require.Equal(t, RDF, FromString("RIGHT_DOWN_FRONT"))
	require.Equal(t, RUB, FromString("Right-Up-Back"))
}

func TestFromString_UnknownMapsToUnspecified(t *testing.T) {
	require.Equal(t, Unspecified, FromString("not-a-basis"))
	require.Equal(t, Unspecified, FromString(""))
}

func TestShortNameRoundTrip(t *testing.T) {
	for _, cs := range []CoordinateSystem{LDB, RDB, LUB, RUB, LDF, RDF, LUF, RUF} {
		require.Equal(t, cs, FromString(cs.ShortName()))
	}
}

func TestString_DashedDisplayName(t *testing.T) {
	require.Equal(t, "Right-Up-Back", RUB.String())
	require.Equal(t, "Unspecified", Unspecified.String())
}
