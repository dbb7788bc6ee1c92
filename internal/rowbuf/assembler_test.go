package rowbuf_test

import (
	"testing"

	"github.com/lehoai/simdcsv/internal/rowbuf"
)

func collect(rows *[][]string) rowbuf.Deliver {
	return func(row rowbuf.Row, n int) {
		rec := make([]string, n)
		for i := 0; i < n; i++ {
			rec[i] = string(row[i])
		}
		*rows = append(*rows, rec)
	}
}

func TestAssembler_Basic(t *testing.T) {
	asm := rowbuf.New(3, 0, false)
	var rows [][]string
	deliver := collect(&rows)

	asm.FieldEnd([]byte("1"))
	asm.FieldEnd([]byte("2"))
	asm.FieldEnd([]byte("3"))
	asm.RecordEnd(deliver)

	if len(rows) != 1 || rows[0][0] != "1" || rows[0][1] != "2" || rows[0][2] != "3" {
		t.Fatalf("got %v", rows)
	}
}

func TestAssembler_OverflowDropsExtraFields(t *testing.T) {
	asm := rowbuf.New(3, 0, false)
	var rows [][]string
	deliver := collect(&rows)

	for _, f := range []string{"1", "2", "3", "4", "5"} {
		asm.FieldEnd([]byte(f))
	}
	asm.RecordEnd(deliver)

	want := []string{"1", "2", "3"}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("row[%d] = %q, want %q", i, rows[0][i], w)
		}
	}
}

func TestAssembler_UnderflowPadsEmpty(t *testing.T) {
	asm := rowbuf.New(4, 0, false)
	var rows [][]string
	deliver := collect(&rows)

	asm.FieldEnd([]byte("1"))
	asm.FieldEnd([]byte("2"))
	asm.FieldEnd([]byte("3"))
	asm.RecordEnd(deliver)

	want := []string{"1", "2", "3", ""}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("row[%d] = %q, want %q", i, rows[0][i], w)
		}
	}
}

func TestAssembler_QuoteTrimming(t *testing.T) {
	asm := rowbuf.New(2, '"', true)
	var rows [][]string
	deliver := collect(&rows)

	asm.FieldEnd([]byte(`"hello,world"`))
	asm.FieldEnd([]byte("123"))
	asm.RecordEnd(deliver)

	if rows[0][0] != "hello,world" {
		t.Errorf("field[0] = %q, want %q", rows[0][0], "hello,world")
	}
	if rows[0][1] != "123" {
		t.Errorf("field[1] = %q, want %q", rows[0][1], "123")
	}
}

func TestAssembler_QuoteTrimmingRequiresBothEnds(t *testing.T) {
	asm := rowbuf.New(1, '"', true)
	var rows [][]string
	deliver := collect(&rows)

	asm.FieldEnd([]byte(`"onlyopen`))
	asm.RecordEnd(deliver)

	if rows[0][0] != `"onlyopen` {
		t.Errorf("field[0] = %q, want verbatim %q", rows[0][0], `"onlyopen`)
	}
}

func TestAssembler_Flush(t *testing.T) {
	asm := rowbuf.New(3, 0, false)
	var rows [][]string
	deliver := collect(&rows)

	asm.FieldEnd([]byte("4"))
	asm.FieldEnd([]byte("5"))
	asm.FieldEnd([]byte("6"))
	asm.Flush(deliver)

	if len(rows) != 1 || rows[0][2] != "6" {
		t.Fatalf("got %v", rows)
	}
}

func TestAssembler_FlushNoOpWhenEmpty(t *testing.T) {
	asm := rowbuf.New(3, 0, false)
	var rows [][]string
	asm.Flush(collect(&rows))

	if len(rows) != 0 {
		t.Fatalf("Flush delivered %d rows from an empty assembler", len(rows))
	}
}
