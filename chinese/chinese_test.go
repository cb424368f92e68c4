package chinese

import (
	"reflect"
	"strings"
	"testing"

	"github.com/fenci-dev/fenci/dictionary"
)

func testDict() *dictionary.Dictionary {
	dict := dictionary.New()
	for _, w := range []string{
		"南京市", "长江大桥", "南京", "市长", "长江", "大桥",
		"今天", "天气", "很好", "的话",
	} {
		dict.Add(w)
	}
	dict.AddStop("的话")
	return dict
}

func TestCut(t *testing.T) {
	seg := NewSegmenter(testDict())

	tests := []struct {
		text     string
		expected []string
	}{
		// Longest match wins: 南京市 beats 南京, 长江大桥 beats 长江+大桥.
		{"南京市长江大桥", []string{"南京市", "长江大桥"}},
		// OOV ideographs come out one by one.
		{"我是程序员", []string{"我", "是", "程", "序", "员"}},
		// ASCII letter and digit runs are extracted whole, whitespace skipped.
		{"今天 Hello123 天气", []string{"今天", "Hello", "123", "天气"}},
		// Punctuation is emitted alone.
		{"今天,天气", []string{"今天", ",", "天气"}},
	}

	for _, tt := range tests {
		got := seg.Cut(tt.text, true, true)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Cut(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

func TestCut_StopWords(t *testing.T) {
	seg := NewSegmenter(testDict())

	got := seg.Cut("今天的话很好", true, true)
	// 的话 matches the dictionary but is a stop word, so it is dropped.
	want := []string{"今天", "很好"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cut() = %v, want %v", got, want)
	}
}

func TestCut_SingleIdeographNeverStopFiltered(t *testing.T) {
	dict := dictionary.New()
	dict.AddStop("的")
	seg := NewSegmenter(dict)

	got := seg.Cut("我的书", true, true)
	want := []string{"我", "的", "书"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cut() = %v, want %v", got, want)
	}
}

func TestCut_NoDictionary(t *testing.T) {
	seg := NewSegmenter(testDict())

	got := seg.Cut("南京市", false, true)
	want := []string{"南", "京", "市"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cut(no dict) = %v, want %v", got, want)
	}
}

func TestCut_NoAlgorithm(t *testing.T) {
	seg := NewSegmenter(testDict())

	got := seg.Cut("南京市 abc", false, false)
	want := []string{"南京市 abc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cut(no dict, no algo) = %v, want %v", got, want)
	}
}

func TestCut_Blank(t *testing.T) {
	seg := NewSegmenter(testDict())
	if got := seg.Cut("   \n\t", true, true); got != nil {
		t.Errorf("Cut(blank) = %v, want nil", got)
	}
}

func TestCut_RoundTrip(t *testing.T) {
	seg := NewSegmenter(testDict())
	text := "今天天气很好 Hello 123 南京市长江大桥"

	got := seg.Cut(text, true, true)
	joined := strings.Join(got, "")
	want := strings.Join(strings.Fields(text), "")
	if joined != want {
		t.Errorf("concatenated tokens = %q, want %q", joined, want)
	}
}
