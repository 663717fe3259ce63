package encode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/toonkit/go-toon/ir"
	"github.com/toonkit/go-toon/validate"
)

func obj(t *testing.T, kvs ...any) *ir.Node {
	t.Helper()
	pairs := make([]ir.KeyVal, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		pairs = append(pairs, ir.KeyVal{Key: kvs[i].(string), Val: kvs[i+1].(*ir.Node)})
	}
	res, err := ir.FromKeyVals(pairs)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

type encodeTest struct {
	name string
	node *ir.Node
	opts []EncodeOption
	want string
}

func TestEncode(t *testing.T) {
	tests := []encodeTest{
		{
			name: "scalar roots",
			node: ir.Null(),
			want: "null\n",
		},
		{
			name: "string root",
			node: ir.FromString("hello world"),
			want: "hello world\n",
		},
		{
			name: "numeric-looking string quoted",
			node: ir.FromString("42"),
			want: "\"42\"\n",
		},
		{
			name: "float keeps point",
			node: ir.FromFloat(1),
			want: "1.0\n",
		},
		{
			name: "empty object",
			node: &ir.Node{Type: ir.ObjectType},
			want: "{}\n",
		},
		{
			name: "empty array",
			node: &ir.Node{Type: ir.ArrayType},
			want: "[]\n",
		},
		{
			name: "flat object sorted",
			node: func() *ir.Node {
				return obj(t, "b", ir.FromInt(2), "a", ir.FromInt(1))
			}(),
			want: "a: 1\nb: 2\n",
		},
		{
			name: "flat object insertion order",
			node: func() *ir.Node {
				return obj(t, "b", ir.FromInt(2), "a", ir.FromInt(1))
			}(),
			opts: []EncodeOption{SortKeys(false)},
			want: "b: 2\na: 1\n",
		},
		{
			name: "nested object",
			node: func() *ir.Node {
				return obj(t, "a", obj(t, "b", obj(t, "c", ir.FromInt(1))))
			}(),
			want: "a:\n  b:\n    c: 1\n",
		},
		{
			name: "tabular array",
			node: func() *ir.Node {
				return obj(t, "items", ir.FromSlice([]*ir.Node{
					obj(t, "id", ir.FromInt(1), "name", ir.FromString("A")),
					obj(t, "id", ir.FromInt(2), "name", ir.FromString("B")),
				}))
			}(),
			want: "items[2]{id,name}:\n  1,A\n  2,B\n",
		},
		{
			name: "tabular with nulls and bools",
			node: func() *ir.Node {
				return obj(t, "rows", ir.FromSlice([]*ir.Node{
					obj(t, "ok", ir.FromBool(true), "v", ir.Null()),
				}))
			}(),
			want: "rows[1]{ok,v}:\n  true,null\n",
		},
		{
			name: "plain array of scalars",
			node: func() *ir.Node {
				return obj(t, "tags", ir.FromSlice([]*ir.Node{
					ir.FromString("x"), ir.FromString("y"),
				}))
			}(),
			want: "tags[2]:\n  0: x\n  1: y\n",
		},
		{
			name: "mixed array elements",
			node: func() *ir.Node {
				return obj(t, "v", ir.FromSlice([]*ir.Node{
					ir.FromInt(1),
					obj(t, "a", ir.FromInt(2)),
					ir.FromSlice([]*ir.Node{ir.FromInt(3)}),
				}))
			}(),
			want: "v[3]:\n  0: 1\n  1:\n    a: 2\n  2[1]:\n    0: 3\n",
		},
		{
			name: "root array tabular",
			node: ir.FromSlice([]*ir.Node{
				obj(t, "id", ir.FromInt(1)),
				obj(t, "id", ir.FromInt(2)),
			}),
			want: "[2]{id}:\n  1\n  2\n",
		},
		{
			name: "delimiter escapes to pipe",
			node: func() *ir.Node {
				return obj(t, "rows", ir.FromSlice([]*ir.Node{
					obj(t, "name", ir.FromString("a,b")),
				}))
			}(),
			want: "rows[1]{name}|:\n  a,b\n",
		},
		{
			name: "fixed delimiter quotes instead",
			node: func() *ir.Node {
				return obj(t, "rows", ir.FromSlice([]*ir.Node{
					obj(t, "name", ir.FromString("a,b")),
				}))
			}(),
			opts: []EncodeOption{FixedDelim()},
			want: "rows[1]{name}:\n  \"a,b\"\n",
		},
		{
			name: "quoted key and value",
			node: func() *ir.Node {
				return obj(t, "a key:", ir.FromString(" padded "))
			}(),
			want: "\"a key:\": \" padded \"\n",
		},
		{
			name: "reserved literals quoted",
			node: func() *ir.Node {
				return obj(t, "a", ir.FromString("true"), "b", ir.FromString("null"))
			}(),
			want: "a: \"true\"\nb: \"null\"\n",
		},
		{
			name: "empty containers inline",
			node: func() *ir.Node {
				return obj(t, "a", &ir.Node{Type: ir.ObjectType}, "b", &ir.Node{Type: ir.ArrayType})
			}(),
			want: "a: {}\nb: []\n",
		},
		{
			name: "wide indent",
			node: func() *ir.Node {
				return obj(t, "a", obj(t, "b", ir.FromInt(1)))
			}(),
			opts: []EncodeOption{Indent(4)},
			want: "a:\n    b: 1\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &strings.Builder{}
			if err := Encode(tt.node, b, tt.opts...); err != nil {
				t.Fatal(err)
			}
			if b.String() != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", b.String(), tt.want)
			}
		})
	}
}

func TestEncodeDepthLimit(t *testing.T) {
	node := ir.FromInt(1)
	for range 11 {
		node = obj(t, "a", node)
	}
	b := &strings.Builder{}
	err := Encode(node, b, MaxDepth(10))
	le := &validate.LimitError{}
	if !errors.As(err, &le) || le.Kind != validate.KindDepth {
		t.Fatalf("got %v, want depth LimitError", err)
	}
	if b.Len() != 0 {
		t.Errorf("limit violation wrote %d bytes, want none", b.Len())
	}
}

func TestEncodeSizeLimit(t *testing.T) {
	node := obj(t, "text", ir.FromString(strings.Repeat("x", 4096)))
	b := &strings.Builder{}
	err := Encode(node, b, MaxSize(100))
	le := &validate.LimitError{}
	if !errors.As(err, &le) || le.Kind != validate.KindSize {
		t.Fatalf("got %v, want size LimitError", err)
	}
	if b.Len() != 0 {
		t.Errorf("limit violation wrote %d bytes, want none", b.Len())
	}
}

func TestEncodeNonFiniteFloat(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		b := &strings.Builder{}
		err := Encode(obj(t, "v", ir.FromFloat(f)), b)
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%v: got %v, want an encoding error", f, err)
		}
	}
}

func TestTabularColumns(t *testing.T) {
	eligible := ir.FromSlice([]*ir.Node{
		obj(t, "b", ir.FromInt(1), "a", ir.FromInt(2)),
		obj(t, "a", ir.FromInt(3), "b", ir.FromInt(4)),
	})
	cols, ok := TabularColumns(eligible, true)
	if !ok || len(cols) != 2 || cols[0] != "a" || cols[1] != "b" {
		t.Fatalf("cols = %v ok = %v", cols, ok)
	}

	for name, arr := range map[string]*ir.Node{
		"empty":          {Type: ir.ArrayType},
		"non-objects":    ir.FromSlice([]*ir.Node{ir.FromInt(1)}),
		"ragged keys":    ir.FromSlice([]*ir.Node{obj(t, "a", ir.FromInt(1)), obj(t, "b", ir.FromInt(2))}),
		"nested cell":    ir.FromSlice([]*ir.Node{obj(t, "a", obj(t, "b", ir.FromInt(1)))}),
		"empty elements": ir.FromSlice([]*ir.Node{{Type: ir.ObjectType}}),
	} {
		if _, ok := TabularColumns(arr, true); ok {
			t.Errorf("%s: should not be tabular", name)
		}
	}
}

func TestNumberText(t *testing.T) {
	for _, tt := range []struct {
		node *ir.Node
		want string
	}{
		{ir.FromInt(0), "0"},
		{ir.FromInt(-42), "-42"},
		{ir.FromFloat(1), "1.0"},
		{ir.FromFloat(-2.5), "-2.5"},
		{ir.FromFloat(0.0001), "0.0001"},
	} {
		got, err := NumberText(tt.node)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("NumberText = %q, want %q", got, tt.want)
		}
	}
}

func TestChooseDelimAllCollide(t *testing.T) {
	arr := ir.FromSlice([]*ir.Node{
		obj(t, "v", ir.FromString("a,b|c\td")),
	})
	if got := ChooseDelim(arr, ',', false); got != ',' {
		t.Errorf("got %q, want fallback to default comma", got)
	}
}
