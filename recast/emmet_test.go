package recast

import (
	"errors"
	"testing"
)

// ============================================================
// Decoder Tests
// ============================================================

func TestDecodeEmmet(t *testing.T) {
	tests := []struct {
		input string
		want  *Value
	}{
		{"a", Map(Entry("a", Map()))},
		{"a{hello world}", Map(Entry("a", Str("hello world")))},
		{"a{10}", Map(Entry("a", Int(10)))},
		{"a{2.5}", Map(Entry("a", Float(2.5)))},
		{"a>b", Map(Entry("a", Map(Entry("b", Map()))))},
		{"a>b>c", Map(Entry("a", Map(Entry("b", Map(Entry("c", Map()))))))},
		{"a+b", Map(Entry("a", Map()), Entry("b", Map()))},
		{"li*3", Map(Entry("li", List(Map(), Map(), Map())))},
		{"li*0", Map(Entry("li", List()))},
		{"li*2{x}", Map(Entry("li", List(Str("x"), Str("x"))))},
		{
			"ul>(li{One}+li{Two})",
			Map(Entry("ul", Map(Entry("li", List(Str("One"), Str("Two")))))),
		},
		{
			"a>b{1}+c{2}",
			Map(Entry("a", Map(Entry("b", Int(1)))), Entry("c", Int(2))),
		},
		{
			"(a+b)",
			Map(Entry("a", Map()), Entry("b", Map())),
		},
		{
			"person>(name{John}+age{30})",
			Map(Entry("person", Map(Entry("name", Str("John")), Entry("age", Int(30))))),
		},
		{
			// A repeated term hands each copy its own child.
			"item*2>name{x}",
			Map(Entry("item", List(
				Map(Entry("name", Str("x"))),
				Map(Entry("name", Str("x"))),
			))),
		},
		{
			"items>id{1}+items>id{2}",
			Map(Entry("items", List(
				Map(Entry("id", Int(1))),
				Map(Entry("id", Int(2))),
			))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := DecodeEmmet(tt.input)
			if err != nil {
				t.Fatalf("DecodeEmmet failed: %v", err)
			}
			requireTreeEqual(t, tt.want, got)
		})
	}
}

func TestDecodeEmmet_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing identifier", "*3"},
		{"missing repeat count", "a*"},
		{"unterminated leaf", "a{unterminated"},
		{"unterminated group", "(a"},
		{"dangling chain", "a>"},
		{"dangling sibling", "a+"},
		{"trailing input", "a)b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEmmet(tt.input)
			if err == nil {
				t.Fatal("expected error, got none")
			}
			var ge *GrammarError
			if !errors.As(err, &ge) {
				t.Fatalf("expected GrammarError, got %T: %v", err, err)
			}
			if ge.Pos.Line == 0 {
				t.Error("GrammarError carries no position")
			}
		})
	}
}

func TestDecodeEmmet_Deterministic(t *testing.T) {
	const input = "ul>(li{One}+li{Two})+footer{done}"

	first, err := DecodeEmmet(input)
	if err != nil {
		t.Fatalf("first decode failed: %v", err)
	}
	second, err := DecodeEmmet(input)
	if err != nil {
		t.Fatalf("second decode failed: %v", err)
	}
	requireTreeEqual(t, first, second)
}

// ============================================================
// Encoder Tests
// ============================================================

func TestEncodeEmmet(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want string
	}{
		{"empty value map", Map(Entry("a", Map())), "a"},
		{"leaf", Map(Entry("a", Str("x"))), "a{x}"},
		{"number leaf", Map(Entry("a", Int(1))), "a{1}"},
		{"siblings", Map(Entry("foo", Int(1)), Entry("bar", Int(2))), "foo{1}+bar{2}"},
		{"chain", Map(Entry("a", Map(Entry("b", Map())))), "a>b"},
		{
			"grouped child",
			Map(Entry("person", Map(Entry("name", Str("John")), Entry("age", Int(30))))),
			"person>(name{John}+age{30})",
		},
		{
			"sequence of leaves",
			Map(Entry("ul", Map(Entry("li", List(Str("One"), Str("Two")))))),
			"ul>(li{One}+li{Two})",
		},
		{
			"sequence of empty maps",
			Map(Entry("li", List(Map(), Map(), Map()))),
			"li+li+li",
		},
		{
			"sequence of records",
			Map(Entry("items", List(Map(Entry("id", Int(1))), Map(Entry("id", Int(2)))))),
			"items>id{1}+items>id{2}",
		},
		{"empty sequence", Map(Entry("k", List())), "k*0"},
		{"null entry", Map(Entry("k", Null())), "k"},
		{
			"root sequence",
			List(Map(Entry("a", Int(1))), Map(Entry("b", Int(2)))),
			"a{1}+b{2}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeEmmet(tt.v)
			if err != nil {
				t.Fatalf("EncodeEmmet failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("EncodeEmmet = %q, want %q", got, tt.want)
			}
		})
	}
}

// ============================================================
// Round Trip
// ============================================================

func TestEmmet_RoundTrip(t *testing.T) {
	trees := []*Value{
		Map(Entry("a", Map())),
		Map(Entry("a", Str("hello"))),
		Map(Entry("person", Map(Entry("name", Str("John")), Entry("age", Int(30))))),
		Map(Entry("a", Map(Entry("b", Int(1)))), Entry("c", Int(2))),
		Map(Entry("li", List(Int(1), Int(2)))),
		Map(Entry("li", List(Map(), Map(), Map()))),
		Map(Entry("items", List(Map(Entry("id", Int(1))), Map(Entry("id", Int(2)))))),
		Map(Entry("a", Map(Entry("b", Map(Entry("c", Str("deep"))))))),
	}

	for _, tree := range trees {
		text, err := EncodeEmmet(tree)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		back, err := DecodeEmmet(text)
		if err != nil {
			t.Fatalf("decode of %q failed: %v", text, err)
		}
		if !tree.Equal(back) {
			t.Errorf("round trip via %q lost structure", text)
		}
	}
}
