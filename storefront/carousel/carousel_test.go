package carousel

import (
	"sync"
	"testing"
	"time"

	"bike-shop/models"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = time.Second

func slides(n int) []models.Item {
	items := models.StarterItems()
	return items[:n]
}

type changeRecorder struct {
	mu      sync.Mutex
	indexes []int
}

func (r *changeRecorder) record(index int, _ models.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indexes = append(r.indexes, index)
}

func (r *changeRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.indexes)
}

func Test_Setup_TakesFirstFiveInCatalogOrder(t *testing.T) {
	c := New(clock.NewMock(), time.Second, nil)
	defer c.Stop()

	c.Setup(models.StarterItems())

	got := c.Slides()
	require.Len(t, got, MaxSlides)
	for i, slide := range got {
		assert.Equal(t, i+1, slide.ID)
	}
	assert.Equal(t, 0, c.Current())
	assert.Equal(t, Active, c.State())
	assert.True(t, c.Running())
}

func Test_Setup_WithoutItemsStaysIdle(t *testing.T) {
	c := New(clock.NewMock(), time.Second, nil)

	c.Setup(nil)

	assert.Equal(t, Idle, c.State())
	assert.False(t, c.Running())
}

func Test_Setup_AgainResetsIndexAndReturnsToIdleWhenEmpty(t *testing.T) {
	c := New(clock.NewMock(), time.Second, nil)
	c.Setup(slides(3))
	c.Tick()

	c.Setup(slides(2))
	assert.Equal(t, 0, c.Current())

	c.Setup([]models.Item{})
	assert.Equal(t, Idle, c.State())
	assert.False(t, c.Running())
}

func Test_Tick_FullCycleWrapsAround(t *testing.T) {
	for n := 1; n <= MaxSlides; n++ {
		c := New(clock.NewMock(), time.Second, nil)
		c.Setup(slides(n))
		c.Stop()
		require.NoError(t, c.GoTo(n-1))
		start := c.Current()

		for i := 0; i < n; i++ {
			c.Tick()
		}

		assert.Equal(t, start, c.Current(), "slides=%d", n)
		c.Stop()
	}
}

func Test_Tick_IdleIsNoOp(t *testing.T) {
	rec := &changeRecorder{}
	c := New(clock.NewMock(), time.Second, rec.record)

	c.Tick()

	assert.Equal(t, 0, c.Current())
	assert.Zero(t, rec.count())
}

func Test_GoTo_RejectsOutOfRange(t *testing.T) {
	c := New(clock.NewMock(), time.Second, nil)
	defer c.Stop()
	c.Setup(slides(3))
	require.NoError(t, c.GoTo(1))

	for _, index := range []int{-1, 3, 42} {
		assert.ErrorIs(t, c.GoTo(index), ErrIndexOutOfRange)
		assert.Equal(t, 1, c.Current())
	}
}

func Test_GoTo_OnIdleIsRejected(t *testing.T) {
	c := New(clock.NewMock(), time.Second, nil)

	assert.ErrorIs(t, c.GoTo(0), ErrIndexOutOfRange)
}

func Test_Autoplay_AdvancesEveryInterval(t *testing.T) {
	mock := clock.NewMock()
	rec := &changeRecorder{}
	c := New(mock, 5*time.Second, rec.record)
	defer c.Stop()
	c.Setup(slides(3))

	mock.Add(5 * time.Second)
	require.Eventually(t, func() bool { return c.Current() == 1 }, waitFor, time.Millisecond)

	mock.Add(5 * time.Second)
	require.Eventually(t, func() bool { return c.Current() == 2 }, waitFor, time.Millisecond)

	mock.Add(5 * time.Second)
	require.Eventually(t, func() bool { return c.Current() == 0 }, waitFor, time.Millisecond)
	assert.Equal(t, 3, rec.count())
}

func Test_GoTo_RestartsAutoplayPeriod(t *testing.T) {
	mock := clock.NewMock()
	c := New(mock, 5*time.Second, nil)
	defer c.Stop()
	c.Setup(slides(5))

	mock.Add(4 * time.Second)
	require.NoError(t, c.GoTo(2))

	mock.Add(4 * time.Second)
	assert.Equal(t, 2, c.Current(), "manual navigation gets a full interval")

	mock.Add(time.Second)
	require.Eventually(t, func() bool { return c.Current() == 3 }, waitFor, time.Millisecond)
}

func Test_Stop_CancelsAutoplay(t *testing.T) {
	mock := clock.NewMock()
	c := New(mock, time.Second, nil)
	c.Setup(slides(3))

	c.Stop()
	mock.Add(3 * time.Second)

	assert.Equal(t, 0, c.Current())
	assert.False(t, c.Running())

	c.Start()
	assert.True(t, c.Running())
	c.Stop()
}

func Test_New_Defaults(t *testing.T) {
	c := New(nil, 0, nil)

	assert.Equal(t, DefaultInterval, c.Interval())
	assert.Equal(t, Idle, c.State())
}
