// Package daily produces the "content of the day" record: one abhang with
// its meaning and attribution, generated once per calendar day and cached.
// Generation is decorative, not critical: every failure path resolves to a
// built-in fallback record, never to an error the caller has to handle.
package daily

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKey = "daily:content" // {date, data} JSON, overwritten on rollover

// Content is one day's record. IsFallback marks the deterministic built-in
// record served when the generative upstream is unavailable; Diagnostic
// carries the underlying cause for debug surfaces only and is never
// persisted.
type Content struct {
	GregorianDate string `json:"gregorianDate"`
	Tithi         string `json:"tithi"`
	Abhang        string `json:"abhang"`
	Meaning       string `json:"meaning"`
	Sant          string `json:"sant"`
	IsFallback    bool   `json:"isFallback,omitempty"`
	Diagnostic    string `json:"-"`
}

type cacheRecord struct {
	Date string  `json:"date"`
	Data Content `json:"data"`
}

// Generator produces a day's content from the generative upstream.
type Generator interface {
	Generate(ctx context.Context) (*Content, error)
}

// Service is the date-keyed cache in front of the generator.
type Service struct {
	rdb *redis.Client
	gen Generator

	now func() time.Time
}

func NewService(rdb *redis.Client, gen Generator) *Service {
	return &Service{rdb: rdb, gen: gen, now: func() time.Time { return time.Now().In(Location()) }}
}

// Location is the calendar the daily rollover follows.
func Location() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// Today returns the record for the current date: cached when the stored date
// matches, freshly generated (and cached) otherwise, and the fallback record
// when generation fails. It never returns nil.
func (s *Service) Today(ctx context.Context) *Content {
	today := s.now().Format("2006-01-02")

	if rec := s.cached(ctx, today); rec != nil {
		return rec
	}

	content, err := s.gen.Generate(ctx)
	if err != nil {
		log.Printf("daily content generation failed, serving fallback: %v", err)
		fb := Fallback(s.now())
		fb.Diagnostic = err.Error()
		return fb
	}

	if err := s.storeCache(ctx, today, content); err != nil {
		log.Printf("daily content cache write failed: %v", err)
	}
	return content
}

// Refresh regenerates and re-caches today's record regardless of cache
// state; the midnight scheduler uses it to pre-warm the new day.
func (s *Service) Refresh(ctx context.Context) *Content {
	content, err := s.gen.Generate(ctx)
	if err != nil {
		log.Printf("daily content refresh failed: %v", err)
		fb := Fallback(s.now())
		fb.Diagnostic = err.Error()
		return fb
	}
	if err := s.storeCache(ctx, s.now().Format("2006-01-02"), content); err != nil {
		log.Printf("daily content cache write failed: %v", err)
	}
	return content
}

func (s *Service) cached(ctx context.Context, today string) *Content {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Printf("daily content cache read failed: %v", err)
		return nil
	}
	var rec cacheRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil
	}
	if rec.Date != today {
		return nil
	}
	return &rec.Data
}

func (s *Service) storeCache(ctx context.Context, date string, c *Content) error {
	if s.rdb == nil {
		return nil
	}
	b, err := json.Marshal(cacheRecord{Date: date, Data: *c})
	if err != nil {
		return fmt.Errorf("encode daily content: %w", err)
	}
	return s.rdb.Set(ctx, cacheKey, b, 0).Err()
}

// extractJSON returns the first balanced {...} span of text, which is how
// the model is asked to answer. Empty string when no balanced span exists.
func extractJSON(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}
	return ""
}
