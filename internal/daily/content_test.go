package daily

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

type stubGen struct {
	calls   int
	content *Content
	err     error
}

func (g *stubGen) Generate(context.Context) (*Content, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	c := *g.content
	return &c, nil
}

func testService(rdb *redis.Client, gen Generator, at time.Time) *Service {
	svc := NewService(rdb, gen)
	svc.now = func() time.Time { return at }
	return svc
}

func TestTodayGeneratesOncePerDay(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	gen := &stubGen{content: &Content{
		GregorianDate: "२६ नोव्हेंबर २०२५",
		Tithi:         "कार्तिक शुद्ध एकादशी",
		Abhang:        "अभंग",
		Meaning:       "अर्थ",
		Sant:          "संत तुकाराम",
	}}
	svc := testService(rdb, gen, time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC))

	first := svc.Today(ctx)
	require.NotNil(t, first)
	assert.False(t, first.IsFallback)
	assert.Equal(t, "संत तुकाराम", first.Sant)
	assert.Equal(t, 1, gen.calls)

	second := svc.Today(ctx)
	require.NotNil(t, second)
	assert.Equal(t, first.Abhang, second.Abhang)
	assert.Equal(t, 1, gen.calls, "same-day request must hit the cache")
}

func TestTodayRegeneratesOnRollover(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	gen := &stubGen{content: &Content{
		GregorianDate: "d", Tithi: "t", Abhang: "a", Meaning: "m", Sant: "s",
	}}

	day1 := time.Date(2025, 11, 26, 23, 0, 0, 0, time.UTC)
	svc := testService(rdb, gen, day1)
	svc.Today(ctx)
	require.Equal(t, 1, gen.calls)

	// same cache key, new date
	svc.now = func() time.Time { return day1.Add(2 * time.Hour) }
	svc.Today(ctx)
	assert.Equal(t, 2, gen.calls, "new calendar day must regenerate")
}

func TestTodayFallsBackOnGeneratorError(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	gen := &stubGen{err: errors.New("upstream down")}
	at := time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC)
	svc := testService(rdb, gen, at)

	c := svc.Today(ctx)
	require.NotNil(t, c)
	assert.True(t, c.IsFallback)
	assert.Equal(t, MarathiDate(at), c.GregorianDate)
	assert.Equal(t, Tithi(at), c.Tithi)
	assert.Equal(t, fallbackAbhang, c.Abhang)
	assert.Equal(t, fallbackSant, c.Sant)
	assert.Equal(t, "upstream down", c.Diagnostic)

	// the fallback is never cached; the next request tries again
	svc.Today(ctx)
	assert.Equal(t, 2, gen.calls)
}

func TestTodayWithoutCacheStillServes(t *testing.T) {
	ctx := context.Background()
	gen := &stubGen{content: &Content{
		GregorianDate: "d", Tithi: "t", Abhang: "a", Meaning: "m", Sant: "s",
	}}
	svc := testService(nil, gen, time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC))

	c := svc.Today(ctx)
	require.NotNil(t, c)
	assert.False(t, c.IsFallback)
	svc.Today(ctx)
	assert.Equal(t, 2, gen.calls, "no cache means every request generates")
}

func TestRefreshOverwritesCache(t *testing.T) {
	ctx := context.Background()
	rdb := setupTestRedis(t)
	gen := &stubGen{content: &Content{
		GregorianDate: "d", Tithi: "t", Abhang: "old", Meaning: "m", Sant: "s",
	}}
	svc := testService(rdb, gen, time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC))

	svc.Today(ctx)

	gen.content.Abhang = "new"
	svc.Refresh(ctx)

	c := svc.Today(ctx)
	assert.Equal(t, "new", c.Abhang)
	assert.Equal(t, 2, gen.calls)
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"here you go:\n```json\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":{"b":2}} trailing`, `{"a":{"b":2}}`},
		{`{"a":"brace } in string"}`, `{"a":"brace } in string"}`},
		{`{"a":"escaped \" quote"}`, `{"a":"escaped \" quote"}`},
		{`no json here`, ""},
		{`{"unbalanced":`, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, extractJSON(c.in), "input %q", c.in)
	}
}
