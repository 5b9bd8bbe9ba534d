package document

import (
	"encoding/json"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, s string) Document {
	t.Helper()
	doc, err := Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse(%s) error: %v", s, err)
	}
	return doc
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{
			name: "scalar replaced",
			a:    `{"a":1}`,
			b:    `{"a":2}`,
			want: `{"a":2}`,
		},
		{
			name: "objects merged per key",
			a:    `{"a":{"b":1}}`,
			b:    `{"a":{"c":2}}`,
			want: `{"a":{"b":1,"c":2}}`,
		},
		{
			name: "nested objects merged recursively",
			a:    `{"defaults":{"bootstrap":{"repo":"a","branch":"main"}}}`,
			b:    `{"defaults":{"bootstrap":{"branch":"dev"}}}`,
			want: `{"defaults":{"bootstrap":{"repo":"a","branch":"dev"}}}`,
		},
		{
			name: "lists replaced wholesale",
			a:    `{"nodes":[{"name":"a"},{"name":"b"}]}`,
			b:    `{"nodes":[{"name":"c"}]}`,
			want: `{"nodes":[{"name":"c"}]}`,
		},
		{
			name: "object replaced by scalar",
			a:    `{"a":{"b":1}}`,
			b:    `{"a":"flat"}`,
			want: `{"a":"flat"}`,
		},
		{
			name: "scalar replaced by object",
			a:    `{"a":"flat"}`,
			b:    `{"a":{"b":1}}`,
			want: `{"a":{"b":1}}`,
		},
		{
			name: "null overrides",
			a:    `{"a":1}`,
			b:    `{"a":null}`,
			want: `{"a":null}`,
		},
		{
			name: "disjoint keys pass through",
			a:    `{"a":1}`,
			b:    `{"b":2}`,
			want: `{"a":1,"b":2}`,
		},
		{
			name: "empty override",
			a:    `{"a":[1,2]}`,
			b:    `{}`,
			want: `{"a":[1,2]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(mustParse(t, tt.a), mustParse(t, tt.b))
			want := mustParse(t, tt.want)
			if !reflect.DeepEqual(got, want) {
				gotJSON, _ := json.Marshal(got)
				t.Errorf("Merge() = %s, want %s", gotJSON, tt.want)
			}
		})
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	a := mustParse(t, `{"a":{"b":1},"list":[1]}`)
	b := mustParse(t, `{"a":{"c":2},"list":[2]}`)
	aBefore := Clone(a)
	bBefore := Clone(b)

	_ = Merge(a, b)

	if !reflect.DeepEqual(a, aBefore) {
		t.Errorf("Merge() mutated its first argument: %v", a)
	}
	if !reflect.DeepEqual(b, bBefore) {
		t.Errorf("Merge() mutated its second argument: %v", b)
	}
}

func TestMerge_OrderMatters(t *testing.T) {
	a := mustParse(t, `{"box":"centos"}`)
	b := mustParse(t, `{"box":"ubuntu"}`)

	if got := Merge(a, b)["box"]; got != "ubuntu" {
		t.Errorf("Merge(a, b)[box] = %v, want ubuntu", got)
	}
	if got := Merge(b, a)["box"]; got != "centos" {
		t.Errorf("Merge(b, a)[box] = %v, want centos", got)
	}
}

func TestClone(t *testing.T) {
	orig := mustParse(t, `{"a":{"b":[1,{"c":2}]}}`)
	cp := Clone(orig)

	if !reflect.DeepEqual(orig, cp) {
		t.Fatalf("Clone() = %v, want %v", cp, orig)
	}

	inner, _ := Object(cp["a"])
	List(inner["b"])[0] = "changed"
	inner["d"] = true

	origInner, _ := Object(orig["a"])
	if _, ok := origInner["d"]; ok {
		t.Error("Clone() shares nested objects with the original")
	}
	if List(origInner["b"])[0] == "changed" {
		t.Error("Clone() shares nested lists with the original")
	}

	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}
