package getarg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlagMap_Nil(t *testing.T) {
	var m *FlagMap

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Names())
	assert.Empty(t, m.Map())
	assert.Equal(t, "", m.String())
	assert.Equal(t, "def", m.GetArg("-a", "def"))
	assert.True(t, m.GetBoolArg("-a", true))
	assert.Equal(t, int64(7), m.GetIntArg("-a", 7))
	assert.False(t, m.IsArgSet("-a"))
	assert.True(t, m.Equal(Parse(nil)))

	out, added := m.SoftSetArg("-a", "1")
	assert.True(t, added)
	assert.Equal(t, "1", out.GetArg("-a", ""))
}

func TestFlagMap_Lookup(t *testing.T) {
	m := Parse([]string{"-a", "-b=2"})

	v, ok := m.Lookup("-a")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	v, ok = m.Lookup("-b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = m.Lookup("b")
	assert.False(t, ok)
}

func TestFlagMap_Map(t *testing.T) {
	m := Parse([]string{"-a=1"})
	copied := m.Map()
	copied["-a"] = "changed"

	assert.Equal(t, "1", m.GetArg("-a", ""))
}

func TestFlagMap_Equal(t *testing.T) {
	a := Parse([]string{"-a=1", "-b=2"})

	assert.True(t, a.Equal(Parse([]string{"-b=2", "-a=1"})))
	assert.False(t, a.Equal(Parse([]string{"-a=1", "-b=3"})))
	assert.False(t, a.Equal(Parse([]string{"-a=1"})))
	assert.False(t, a.Equal(Parse([]string{"-a=1", "-c=2"})))
	assert.False(t, a.Equal(nil))
}

func TestFlagMap_SoftSet(t *testing.T) {
	m := Parse([]string{"-a=1"})

	same, added := m.SoftSetArg("-a", "2")
	assert.False(t, added)
	assert.Equal(t, "1", same.GetArg("-a", ""))

	out, added := m.SoftSetArg("-b", "2")
	assert.True(t, added)
	assert.Equal(t, "2", out.GetArg("-b", ""))
	assert.False(t, m.IsArgSet("-b"), "receiver is unchanged")

	out, added = out.SoftSetBoolArg("-listen", false)
	assert.True(t, added)
	assert.False(t, out.GetBoolArg("-listen", true))
	assert.Equal(t, "0", out.GetArg("-listen", ""))

	out, added = out.SoftSetBoolArg("-server", true)
	assert.True(t, added)
	assert.Equal(t, "1", out.GetArg("-server", ""))

	_, added = out.SoftSetBoolArg("-server", false)
	assert.False(t, added)
	assert.Equal(t, []string{"-a", "-b", "-listen", "-server"}, out.Names())
}

func TestFlagMap_Merge(t *testing.T) {
	upper := Parse([]string{"-a=1", "-b"})
	lower := Parse([]string{"-b=lower", "-c=3"})

	merged := upper.Merge(lower)
	assert.Equal(t, map[string]string{"-a": "1", "-b": "", "-c": "3"}, merged.Map())
	assert.Equal(t, []string{"-a", "-b", "-c"}, merged.Names())
	assert.Equal(t, 2, upper.Len(), "receiver is unchanged")

	assert.True(t, upper.Merge(nil).Equal(upper))
}

func TestFlagMap_GetTimeArg(t *testing.T) {
	def := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	m := Parse([]string{"-since=2024-03-05", "-bad=bogus", "-empty"})

	assert.Equal(t, def, m.GetTimeArg("-missing", def))
	assert.True(t, m.GetTimeArg("-bad", def).IsZero())
	assert.True(t, m.GetTimeArg("-empty", def).IsZero())

	got := m.GetTimeArg("-since", def)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 5, got.Day())
}
