package http

import (
	"encoding/json"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	maxLoggedBody      = 2048
)

var redactedKeyFragments = []string{"password", "secret", "token", "access_key", "client_id"}

func registerLogging(e *echo.Echo, logger zerolog.Logger) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := logger.Info()
			if v.Status >= 500 || v.Error != nil {
				event = logger.Error()
			} else if v.Status >= 400 {
				event = logger.Warn()
			}

			event = event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Int64("latency_ms", v.Latency.Milliseconds())

			if summary := c.Get(requestBodyLogKey); summary != nil {
				event = event.Interface("request_body", summary)
			}
			if summary := c.Get(responseBodyLogKey); summary != nil {
				event = event.Interface("response_body", summary)
			}
			if v.Error != nil {
				event = event.Err(v.Error)
			}
			event.Msg("http request")
			return nil
		},
	}))

	e.Use(middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		// Pages and static files are large and not worth summarizing.
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, "/api/")
		},
		Handler: func(c echo.Context, reqBody, resBody []byte) {
			if summary := sanitizeBody(reqBody, c.Request().Header.Get(echo.HeaderContentType)); summary != nil {
				c.Set(requestBodyLogKey, summary)
			}
			if summary := sanitizeBody(resBody, c.Response().Header().Get(echo.HeaderContentType)); summary != nil {
				c.Set(responseBodyLogKey, summary)
			}
		},
	}))
}

func sanitizeBody(body []byte, contentType string) interface{} {
	if len(body) == 0 {
		return nil
	}

	loweredType := strings.ToLower(strings.TrimSpace(contentType))
	if strings.HasPrefix(loweredType, "application/json") || json.Valid(body) {
		var data interface{}
		if err := json.Unmarshal(body, &data); err == nil {
			return limitJSONSize(sanitizeJSON(data, ""))
		}
	}

	if containsBinaryBytes(body) {
		return "binary"
	}
	return clampString(string(body))
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, fragment := range redactedKeyFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

func limitJSONSize(value interface{}) interface{} {
	if value == nil {
		return nil
	}
	buf, err := json.Marshal(value)
	if err != nil {
		return value
	}
	if len(buf) <= maxLoggedBody {
		return value
	}
	summary := summarizeJSONPreview(value, 0)
	if summary == nil {
		return map[string]interface{}{"_truncated": true}
	}
	return map[string]interface{}{
		"_truncated": true,
		"_preview":   summary,
	}
}

func sanitizeJSON(value interface{}, keyHint string) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, val := range v {
			if isSensitiveKey(key) {
				result[key] = "redacted"
				continue
			}
			result[key] = sanitizeJSON(val, key)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = sanitizeJSON(item, keyHint)
		}
		return result
	case string:
		if containsBinaryBytes([]byte(v)) {
			return "binary"
		}
		return clampString(v)
	default:
		return v
	}
}

// summarizeJSONPreview keeps the shape of an oversized body: a few keys per
// object, a few samples per array, and short strings.
func summarizeJSONPreview(value interface{}, depth int) interface{} {
	const (
		maxDepth         = 3
		maxMapEntries    = 6
		maxArraySamples  = 3
		maxStringPreview = 256
	)

	if depth >= maxDepth {
		return "...(omitted)..."
	}

	switch v := value.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		result := make(map[string]interface{})
		for i, key := range keys {
			if i >= maxMapEntries {
				result["_omitted_fields"] = len(keys) - i
				break
			}
			result[key] = summarizeJSONPreview(v[key], depth+1)
		}
		return result
	case []interface{}:
		total := len(v)
		out := map[string]interface{}{"_total_items": total}
		sample := make([]interface{}, 0, maxArraySamples)
		for i := 0; i < total && i < maxArraySamples; i++ {
			sample = append(sample, summarizeJSONPreview(v[i], depth+1))
		}
		if len(sample) > 0 {
			out["_sample"] = sample
		}
		if total > len(sample) {
			out["_omitted_items"] = total - len(sample)
		}
		return out
	case string:
		if len(v) <= maxStringPreview {
			return v
		}
		return truncateUTF8(v, maxStringPreview) + "...(truncated)"
	default:
		return v
	}
}

func containsBinaryBytes(data []byte) bool {
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return true
		}
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return true
		}
		data = data[size:]
	}
	return false
}

func clampString(value string) string {
	if len(value) <= maxLoggedBody {
		return value
	}
	return truncateUTF8(value, maxLoggedBody) + "...(truncated)"
}

func truncateUTF8(value string, limit int) string {
	truncated := value[:limit]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated
}
