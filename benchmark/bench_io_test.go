package benchmark

import (
    "bytes"
    "testing"

    argio "github.com/dzonerzy/go-argparse/io"
)

// Category: io

func BenchmarkIO_Write(b *testing.B) {
    buf := &bytes.Buffer{}
    io := argio.New().WithOut(buf)
    data := []byte("some output line\n")
    b.ResetTimer()
    for i := 0; i < b.N; i++ {
        _, _ = io.Out().Write(data)
        buf.Reset()
    }
}

func BenchmarkIO_Width(b *testing.B) {
    io := argio.New()
    b.ResetTimer()
    for i := 0; i < b.N; i++ {
        _ = io.Width()
    }
}
