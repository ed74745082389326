package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/translate/v2"
)

func newTestTranslator(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Translator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := translate.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/language/translate/"),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("translate.NewService: %v", err)
	}
	return NewTranslator(svc, timeout, nil)
}

func TestTranslateTextSuccess(t *testing.T) {
	var target string
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		target = r.Form.Get("target")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"Tom &amp; Jerry ทัวร์"}]}}`))
	}, time.Second)

	got := tr.TranslateText(context.Background(), "Tom & Jerry tour", "en", "th")
	if got != "Tom & Jerry ทัวร์" {
		t.Errorf("TranslateText = %q", got)
	}
	if target != "th" {
		t.Errorf("target = %q", target)
	}
}

func TestTranslateTextMapsChinese(t *testing.T) {
	var target string
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		target = r.Form.Get("target")
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"你好"}]}}`))
	}, time.Second)

	if got := tr.TranslateText(context.Background(), "hello", "en", "zh"); got != "你好" {
		t.Errorf("TranslateText = %q", got)
	}
	if target != "zh-CN" {
		t.Errorf("target = %q, want zh-CN", target)
	}
}

func TestTranslateTextSameLanguageSkipsCall(t *testing.T) {
	var calls atomic.Int32
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}, time.Second)

	if got := tr.TranslateText(context.Background(), "hello", "th", "th"); got != "hello" {
		t.Errorf("TranslateText = %q", got)
	}
	if calls.Load() != 0 {
		t.Errorf("api called %d times", calls.Load())
	}
}

func TestTranslateTextFallsBackOnError(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"quota"}}`, http.StatusForbidden)
	}, time.Second)

	if got := tr.TranslateText(context.Background(), "hello", "en", "th"); got != "hello" {
		t.Errorf("TranslateText = %q, want source text", got)
	}
}

func TestTranslateTextFallsBackOnTimeout(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)

	start := time.Now()
	if got := tr.TranslateText(context.Background(), "hello", "en", "th"); got != "hello" {
		t.Errorf("TranslateText = %q, want source text", got)
	}
	if time.Since(start) > time.Second {
		t.Errorf("timeout not honoured, took %v", time.Since(start))
	}
}

func TestTranslateTextWithoutClient(t *testing.T) {
	tr := NewTranslator(nil, 0, nil)
	if got := tr.TranslateText(context.Background(), "hello", "en", "th"); got != "hello" {
		t.Errorf("TranslateText = %q", got)
	}
}

func TestFillMissing(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"แปลแล้ว"}]}}`))
	}, time.Second)

	titleTh := ""
	titleZh := "已有"
	descTh := ""
	tr.FillMissing(context.Background(), []Field{
		{Source: "Title", Target: "th", Dest: &titleTh},
		{Source: "Title", Target: "zh", Dest: &titleZh},
		{Source: "", Target: "th", Dest: &descTh},
	})

	if titleTh != "แปลแล้ว" {
		t.Errorf("titleTh = %q", titleTh)
	}
	if titleZh != "已有" {
		t.Errorf("existing value overwritten: %q", titleZh)
	}
	if descTh != "" {
		t.Errorf("empty source produced %q", descTh)
	}
}
