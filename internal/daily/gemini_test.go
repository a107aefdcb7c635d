package daily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateResponse(t *testing.T, text string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	})
	require.NoError(t, err)
	return b
}

const modelOutput = "नक्की, आजची माहिती:\n```json\n" +
	`{"gregorianDate":"२६ नोव्हेंबर २०२५","tithi":"कार्तिक शुद्ध एकादशी","abhang":"रूप पाहता लोचनी","meaning":"अर्थ","sant":"संत ज्ञानेश्वर"}` +
	"\n```"

func TestGeneratorPrimaryModel(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write(candidateResponse(t, modelOutput))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", server.URL)
	gen := NewGeminiGenerator(client, "gemini-2.0-flash")

	c, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "संत ज्ञानेश्वर", c.Sant)
	assert.Equal(t, "रूप पाहता लोचनी", c.Abhang)
	assert.False(t, c.IsFallback)

	require.Len(t, paths, 1)
	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", paths[0])
}

func TestGeneratorDiscoversModelOnFailure(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/models/gemini-2.0-flash:generateContent":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"message":"model not found"}}`))
		case "/models":
			json.NewEncoder(w).Encode(map[string]any{
				"models": []map[string]any{
					{"name": "models/embedding-001", "supportedGenerationMethods": []string{"embedContent"}},
					{"name": "models/gemini-1.5-flash", "supportedGenerationMethods": []string{"generateContent"}},
				},
			})
		case "/models/gemini-1.5-flash:generateContent":
			w.Write(candidateResponse(t, modelOutput))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", server.URL)
	gen := NewGeminiGenerator(client, "gemini-2.0-flash")

	c, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "संत ज्ञानेश्वर", c.Sant)

	assert.Equal(t, []string{
		"/models/gemini-2.0-flash:generateContent",
		"/models",
		"/models/gemini-1.5-flash:generateContent",
	}, paths)
}

func TestGeneratorWithoutAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without an api key")
	}))
	defer server.Close()

	client := NewGeminiClient("", server.URL)
	gen := NewGeminiGenerator(client, "")

	_, err := gen.Generate(context.Background())
	assert.ErrorIs(t, err, errNoAPIKey)
}

func TestGeneratorRejectsIncompleteOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(candidateResponse(t, `{"abhang":"only the verse"}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", server.URL)
	gen := NewGeminiGenerator(client, "gemini-2.0-flash")

	_, err := gen.Generate(context.Background())
	assert.Error(t, err)
}

func TestParseContent(t *testing.T) {
	c, err := parseContent(modelOutput)
	require.NoError(t, err)
	assert.Equal(t, "कार्तिक शुद्ध एकादशी", c.Tithi)

	_, err = parseContent("nothing structured")
	assert.Error(t, err)
}

func TestServiceSurvivesTotalOutage(t *testing.T) {
	// every upstream call fails, including model discovery
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"backend unavailable"}}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key", server.URL)
	svc := NewService(nil, NewGeminiGenerator(client, "gemini-2.0-flash"))

	c := svc.Today(context.Background())
	require.NotNil(t, c)
	assert.True(t, c.IsFallback)
	assert.NotEmpty(t, c.Abhang)
	assert.NotEmpty(t, c.Diagnostic)
}
