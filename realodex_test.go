package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/gopherfs/fs/io/mem/simple"
	"github.com/kylelemons/godebug/pretty"

	"github.com/element-of-surprise/realodex/config"
)

func TestParseLine(t *testing.T) {
	c, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		desc string
		line string
		ok   bool
		want string
	}{
		{
			desc: "Edit",
			line: "edit 3 h/hdb",
			ok:   true,
			want: "edit \"3\"\n\thousing type: Preferred housing type is HDB\n\tremark: No remarks\n",
		},
		{
			desc: "Aggregated errors are one per line",
			line: "edit 3 p/1 f/0",
			want: "Phone numbers should only contain numbers, and it should be at least 3 digits long\n" +
				"Family size should be a positive integer\n",
		},
		{
			desc: "Missing prefixes",
			line: "add n/John",
			want: "Missing compulsory prefixes in the command! Prefixes That Are Missed Are: p/ i/ e/ a/ f/ t/ h/\n",
		},
	}

	for _, test := range tests {
		buf := &bytes.Buffer{}
		ok := parseLine(buf, c, test.line)
		if ok != test.ok {
			t.Errorf("TestParseLine(%s): got ok == %v, want %v", test.desc, ok, test.ok)
		}
		if diff := pretty.Compare(test.want, buf.String()); diff != "" {
			t.Errorf("TestParseLine(%s): -want/+got:\n%s", test.desc, diff)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	wfs := simple.New()
	if _, err := loadConfig(wfs, ""); err != nil {
		t.Errorf("TestLoadConfig(default): got err == %s", err)
	}
	if _, err := loadConfig(wfs, "missing.toml"); err == nil {
		t.Errorf("TestLoadConfig(missing): got err == nil")
	}
}

func TestResumeValidate(t *testing.T) {
	tests := []struct {
		desc    string
		r       resumeConf
		wantErr bool
	}{
		{desc: "ok", r: resumeConf{Batch: "b.txt", StartAt: 3}},
		{desc: "no batch recorded", r: resumeConf{StartAt: 3}},
		{desc: "no StartAt", r: resumeConf{Batch: "b.txt"}, wantErr: true},
		{desc: "other batch", r: resumeConf{Batch: "other.txt", StartAt: 3}, wantErr: true},
	}
	for _, test := range tests {
		err := test.r.validate("b.txt")
		if (err != nil) != test.wantErr {
			t.Errorf("TestResumeValidate(%s): got err == %v, wantErr %v", test.desc, err, test.wantErr)
		}
	}
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	l := newLogger("info", "json", buf)
	l.Debug("hidden")
	l.Info("shown")
	if !bytes.Contains(buf.Bytes(), []byte(`"msg":"shown"`)) || bytes.Contains(buf.Bytes(), []byte("hidden")) {
		t.Errorf("TestNewLogger: got %q", buf.String())
	}
	if !newLogger("bogus", "text", buf).Enabled(context.Background(), slog.LevelWarn) {
		t.Errorf("TestNewLogger: unknown level should default to warn")
	}
}
