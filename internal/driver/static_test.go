package driver

import (
	"testing"

	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/testing/require"
)

func TestCheckStaticAcceptsWellFormedFormat(t *testing.T) {
	err := CheckStatic("{}, {}", []args.Kind{args.KindInt, args.KindString})
	require.NoError(t, err)
}

func TestCheckStaticCatchesOutOfRangeArgID(t *testing.T) {
	err := CheckStatic("{} {}", []args.Kind{args.KindInt})
	require.Error(t, err)
}

func TestCheckStaticCatchesUnsupportedTypeForKind(t *testing.T) {
	err := CheckStatic("{:x}", []args.Kind{args.KindString})
	require.Error(t, err)
}

func TestCheckStaticCatchesManualAutomaticMix(t *testing.T) {
	err := CheckStatic("{} {0}", []args.Kind{args.KindInt, args.KindInt})
	require.Error(t, err)
}

func TestCheckStaticAllowsExplicitIDReuse(t *testing.T) {
	err := CheckStatic("{0} {0}", []args.Kind{args.KindInt})
	require.NoError(t, err)
}

func TestCheckStaticSkipsCustomKind(t *testing.T) {
	err := CheckStatic("{:whatever}", []args.Kind{args.KindCustom})
	require.NoError(t, err)
}
