package lexer

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestLine(t *testing.T) {
	markers := []string{"n/", "p/", "h/", "r/", "t/"}

	tests := []struct {
		desc    string
		line    string
		markers []string
		want    []Item
	}{
		{
			desc: "Markers only",
			line: "n/John Doe p/98765432 h/hdb",
			want: []Item{
				{ItemPreamble, "", ""},
				{ItemSegment, "n/", "John Doe"},
				{ItemSegment, "p/", "98765432"},
				{ItemSegment, "h/", "hdb"},
			},
		},
		{
			desc: "Preamble is trimmed",
			line: "  1   n/Jane  ",
			want: []Item{
				{ItemPreamble, "", "1"},
				{ItemSegment, "n/", "Jane"},
			},
		},
		{
			desc: "Empty line",
			line: "",
			want: []Item{
				{ItemPreamble, "", ""},
			},
		},
		{
			desc: "Marker with no value",
			line: "r/",
			want: []Item{
				{ItemPreamble, "", ""},
				{ItemSegment, "r/", ""},
			},
		},
		{
			desc: "Repeated marker keeps both segments in order",
			line: "t/buyer t/seller",
			want: []Item{
				{ItemPreamble, "", ""},
				{ItemSegment, "t/", "buyer"},
				{ItemSegment, "t/", "seller"},
			},
		},
		{
			desc: "Marker inside a word is not a boundary",
			line: "n/Johnn/Jane",
			want: []Item{
				{ItemPreamble, "", ""},
				{ItemSegment, "n/", "Johnn/Jane"},
			},
		},
		{
			desc: "Marker after whitespace inside a value splits it",
			line: "r/call back p/later",
			want: []Item{
				{ItemPreamble, "", ""},
				{ItemSegment, "r/", "call back"},
				{ItemSegment, "p/", "later"},
			},
		},
		{
			desc: "Unknown marker stays in the preamble",
			line: "x/foo n/Bar",
			want: []Item{
				{ItemPreamble, "", "x/foo"},
				{ItemSegment, "n/", "Bar"},
			},
		},
		{
			desc: "Tab is a boundary",
			line: "n/Zoë\tp/123",
			want: []Item{
				{ItemPreamble, "", ""},
				{ItemSegment, "n/", "Zoë"},
				{ItemSegment, "p/", "123"},
			},
		},
		{
			desc:    "Longest marker wins",
			line:    "a/b/val a/plain",
			markers: []string{"a/", "a/b/"},
			want: []Item{
				{ItemPreamble, "", ""},
				{ItemSegment, "a/b/", "val"},
				{ItemSegment, "a/", "plain"},
			},
		},
		{
			desc:    "Empty markers are ignored",
			line:    "hello n/x",
			markers: []string{"", "n/"},
			want: []Item{
				{ItemPreamble, "", "hello"},
				{ItemSegment, "n/", "x"},
			},
		},
	}

	l := New()
	for _, test := range tests {
		m := test.markers
		if m == nil {
			m = markers
		}
		got := l.Parse(test.line, m)
		if diff := pretty.Compare(test.want, got); diff != "" {
			t.Errorf("TestLine(%s): -want/+got:\n%s", test.desc, diff)
		}
	}
}

func TestSortMarkers(t *testing.T) {
	got := sortMarkers([]string{"a/", "", "abc/", "a/", "ab/"})
	want := []string{"abc/", "ab/", "a/"}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestSortMarkers: -want/+got:\n%s", diff)
	}
}
