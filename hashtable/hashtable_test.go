package hashtable_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/clrs/hashtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// table is the surface shared by Chained and Open; Put errors are folded in.
type table interface {
	put(k string, v int) error
	Get(k string) (int, error)
	Delete(k string) error
	Len() int
	Keys() []string
	LoadFactor() float64
}

type chainedAdapter struct{ *hashtable.Chained[string, int] }

func (c chainedAdapter) put(k string, v int) error {
	c.Put(k, v)
	return nil
}

type openAdapter struct{ *hashtable.Open[string, int] }

func (o openAdapter) put(k string, v int) error { return o.Put(k, v) }

func newTables(t *testing.T) map[string]table {
	t.Helper()
	c, err := hashtable.NewChained[string, int](hashtable.StringHasher)
	require.NoError(t, err)
	out := map[string]table{"chained": chainedAdapter{c}}
	for _, p := range []hashtable.Probing{hashtable.Linear, hashtable.Quadratic, hashtable.Double} {
		o, err := hashtable.NewOpen[string, int](hashtable.StringHasher, hashtable.WithProbing(p))
		require.NoError(t, err)
		out["open-"+p.String()] = openAdapter{o}
	}

	return out
}

func TestTables_AgainstMap(t *testing.T) {
	for name, tb := range newTables(t) {
		t.Run(name, func(t *testing.T) {
			r := rand.New(rand.NewSource(42))
			ref := map[string]int{}
			for step := 0; step < 3000; step++ {
				k := fmt.Sprintf("k%d", r.Intn(300))
				switch r.Intn(3) {
				case 0, 1:
					require.NoError(t, tb.put(k, step))
					ref[k] = step
				case 2:
					err := tb.Delete(k)
					if _, ok := ref[k]; ok {
						require.NoError(t, err)
						delete(ref, k)
					} else {
						require.ErrorIs(t, err, hashtable.ErrKeyNotFound)
					}
				}
				require.Equal(t, len(ref), tb.Len())
			}

			for k, want := range ref {
				got, err := tb.Get(k)
				require.NoError(t, err, k)
				assert.Equal(t, want, got, k)
			}
			keys := tb.Keys()
			sort.Strings(keys)
			want := make([]string, 0, len(ref))
			for k := range ref {
				want = append(want, k)
			}
			sort.Strings(want)
			assert.Equal(t, want, keys)
		})
	}
}

func TestTables_MissingKey(t *testing.T) {
	for name, tb := range newTables(t) {
		_, err := tb.Get("absent")
		assert.ErrorIs(t, err, hashtable.ErrKeyNotFound, name)
		assert.ErrorIs(t, tb.Delete("absent"), hashtable.ErrKeyNotFound, name)
	}
}

func TestChained_GrowthKeepsLoad(t *testing.T) {
	c, err := hashtable.NewChained[int, int](hashtable.IntHasher[int], hashtable.WithCapacity(2), hashtable.WithMaxLoad(1))
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		c.Put(i, i*i)
		assert.LessOrEqual(t, c.LoadFactor(), 1.0)
	}
	assert.Equal(t, 1000, c.Len())
	assert.Equal(t, 1024, c.Cap())

	total := 0
	for _, n := range c.ChainLengths() {
		total += n
	}
	assert.Equal(t, 1000, total)

	v, err := c.Get(31)
	require.NoError(t, err)
	assert.Equal(t, 961, v)
}

func TestChained_ReplaceDoesNotGrow(t *testing.T) {
	c, err := hashtable.NewChained[string, string](hashtable.StringHasher, hashtable.WithCapacity(1))
	require.NoError(t, err)
	c.Put("a", "1")
	c.Put("a", "2")
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Cap())
	v, _ := c.Get("a")
	assert.Equal(t, "2", v)
	assert.True(t, c.Contains("a"))
}

func TestOpen_WithoutGrowthFills(t *testing.T) {
	for _, p := range []hashtable.Probing{hashtable.Linear, hashtable.Quadratic, hashtable.Double} {
		o, err := hashtable.NewOpen[int, int](hashtable.IntHasher[int],
			hashtable.WithCapacity(8), hashtable.WithoutGrowth(), hashtable.WithProbing(p))
		require.NoError(t, err)

		// Every probe sequence must reach all eight slots.
		for i := 0; i < 8; i++ {
			require.NoError(t, o.Put(i, i), "%s insert %d", p, i)
		}
		assert.Equal(t, 1.0, o.LoadFactor())
		assert.ErrorIs(t, o.Put(99, 99), hashtable.ErrTableFull, p.String())

		// A tombstone can be reused, and existing keys can still be replaced.
		require.NoError(t, o.Delete(3))
		require.NoError(t, o.Put(99, 99))
		require.NoError(t, o.Put(5, 50))
		v, err := o.Get(5)
		require.NoError(t, err)
		assert.Equal(t, 50, v)
		assert.False(t, o.Contains(3))
	}
}

func TestOpen_TombstonesKeepChainsSearchable(t *testing.T) {
	// A constant hasher forces every key onto one probe sequence.
	same := func(int) uint64 { return 7 }
	o, err := hashtable.NewOpen[int, string](same, hashtable.WithCapacity(16), hashtable.WithoutGrowth())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, o.Put(i, fmt.Sprint(i)))
	}
	require.NoError(t, o.Delete(1))
	require.NoError(t, o.Delete(2))

	v, err := o.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "4", v)
	assert.Equal(t, 3, o.Len())
}

func TestOpen_GrowthStaysBelowMaxLoad(t *testing.T) {
	o, err := hashtable.NewOpen[int, int](hashtable.IntHasher[int], hashtable.WithProbing(hashtable.Double))
	require.NoError(t, err)
	for i := 0; i < 500; i++ {
		require.NoError(t, o.Put(i, i))
		assert.LessOrEqual(t, o.LoadFactor(), hashtable.DefaultOpenLoad)
	}
	assert.Equal(t, hashtable.Double, o.Probing())
}

func TestConstructors_Errors(t *testing.T) {
	_, err := hashtable.NewChained[string, int](nil)
	assert.ErrorIs(t, err, hashtable.ErrNilHasher)
	_, err = hashtable.NewOpen[string, int](nil)
	assert.ErrorIs(t, err, hashtable.ErrNilHasher)

	_, err = hashtable.NewChained[string, int](hashtable.StringHasher, hashtable.WithCapacity(0))
	assert.ErrorIs(t, err, hashtable.ErrOptionViolation)
	_, err = hashtable.NewChained[string, int](hashtable.StringHasher, hashtable.WithMaxLoad(-1))
	assert.ErrorIs(t, err, hashtable.ErrOptionViolation)
	_, err = hashtable.NewOpen[string, int](hashtable.StringHasher, hashtable.WithMaxLoad(1))
	assert.ErrorIs(t, err, hashtable.ErrOptionViolation)
	_, err = hashtable.NewOpen[string, int](hashtable.StringHasher, hashtable.WithProbing(hashtable.Probing(9)))
	assert.ErrorIs(t, err, hashtable.ErrOptionViolation)
}

func TestHashMethods(t *testing.T) {
	assert.Equal(t, 3, hashtable.Division(101, 7))
	assert.Equal(t, 0, hashtable.Division(14, 7))

	// Textbook example: k = 123456, p = 14 gives h(k) = 67.
	assert.Equal(t, uint64(67), hashtable.Multiplication(123456, 14))
	assert.Equal(t, uint64(0), hashtable.Multiplication(123456, 0))
	for k := uint64(0); k < 100; k++ {
		assert.Less(t, hashtable.Multiplication(k, 5), uint64(32))
	}

	assert.Equal(t, hashtable.StringHasher("clrs"), hashtable.StringHasher("clrs"))
	assert.NotEqual(t, hashtable.IntHasher(1), hashtable.IntHasher(2))
}
