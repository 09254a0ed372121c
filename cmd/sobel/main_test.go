package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/sobel"
	"github.com/gogpu/sobel/internal/image"
)

func TestRun(t *testing.T) {
	t.Chdir(t.TempDir())

	in := sobel.NewImage(20, 12, 3)
	for i := range in.Pix {
		in.Pix[i] = byte(i * 7)
	}
	if err := image.Save(inputPath, in); err != nil {
		t.Fatalf("Save(%s) = %v", inputPath, err)
	}

	if err := run(context.Background(), message.NewPrinter(language.English)); err != nil {
		t.Fatalf("run() = %v", err)
	}

	seq, err := image.Load(sequentialPath)
	if err != nil {
		t.Fatalf("Load(%s) = %v", sequentialPath, err)
	}
	par, err := image.Load(parallelPath)
	if err != nil {
		t.Fatalf("Load(%s) = %v", parallelPath, err)
	}
	if !bytes.Equal(seq.Pix, par.Pix) {
		t.Error("sequential and parallel output files differ")
	}
}

func TestRun_MissingInput(t *testing.T) {
	t.Chdir(t.TempDir())

	err := run(context.Background(), message.NewPrinter(language.English))
	if !errors.Is(err, image.ErrDecode) {
		t.Errorf("run() = %v, want image.ErrDecode", err)
	}
}

func TestFilterBoth(t *testing.T) {
	in := sobel.NewImage(8, 8, 4)
	for i := range in.Pix {
		in.Pix[i] = byte(i % 13 * 19)
	}

	r, seq, par, err := filterBoth(context.Background(), in)
	if err != nil {
		t.Fatalf("filterBoth() = %v", err)
	}
	if !bytes.Equal(seq.Pix, par.Pix) {
		t.Error("filterBoth() outputs differ")
	}
	if r.sequential < 0 || r.parallel < 0 {
		t.Errorf("report = %+v, want non-negative durations", r)
	}
}

func TestReportPrint(t *testing.T) {
	r := report{sequential: 1500 * time.Millisecond, parallel: 250 * time.Millisecond}

	var buf bytes.Buffer
	r.print(&buf, message.NewPrinter(language.English))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("print() wrote %d lines, want 2: %q", len(lines), buf.String())
	}
	checks := []struct{ prefix, value string }{
		{"Sequential processing time: ", "1.5"},
		{"Parallel processing time: ", "0.25"},
	}
	for i, c := range checks {
		if !strings.HasPrefix(lines[i], c.prefix+c.value) || !strings.HasSuffix(lines[i], " seconds") {
			t.Errorf("line %d = %q, want %q<digits> seconds", i, lines[i], c.prefix+c.value)
		}
	}
}
