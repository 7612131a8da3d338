package catalog

import (
	"encoding/json"
	"testing"
)

func TestLooseIntUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`7`, 7},
		{`"7"`, 7},
		{`" 7 "`, 7},
		{`7.9`, 7},
		{`null`, 0},
		{`""`, 0},
		{`"abc"`, 0},
		{`true`, 0},
	}
	for _, c := range cases {
		var v LooseInt
		if err := json.Unmarshal([]byte(c.in), &v); err != nil {
			t.Fatalf("unmarshal %s: %v", c.in, err)
		}
		if int(v) != c.want {
			t.Fatalf("LooseInt(%s) = %d, want %d", c.in, int(v), c.want)
		}
	}
}

func TestLooseBoolUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"TRUE"`, true},
		{`"1"`, true},
		{`1`, true},
		{`0`, false},
		{`"false"`, false},
		{`"0"`, false},
		{`null`, false},
		{`"si"`, false},
	}
	for _, c := range cases {
		var v LooseBool
		if err := json.Unmarshal([]byte(c.in), &v); err != nil {
			t.Fatalf("unmarshal %s: %v", c.in, err)
		}
		if bool(v) != c.want {
			t.Fatalf("LooseBool(%s) = %v, want %v", c.in, bool(v), c.want)
		}
	}
}

func TestLooseNumberKeepsDecimals(t *testing.T) {
	var v LooseNumber
	if err := json.Unmarshal([]byte(`"19990.50"`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if float64(v) != 19990.50 {
		t.Fatalf("LooseNumber = %v, want 19990.50", float64(v))
	}
}

func TestToNumber(t *testing.T) {
	if n, ok := ToNumber(float64(15000)); !ok || n != 15000 {
		t.Fatalf("float64: got %v ok=%v", n, ok)
	}
	if n, ok := ToNumber("15000.5"); !ok || n != 15000.5 {
		t.Fatalf("string: got %v ok=%v", n, ok)
	}
	if _, ok := ToNumber("abc"); ok {
		t.Fatal("string no numérico debería fallar")
	}
	if _, ok := ToNumber(nil); ok {
		t.Fatal("nil debería fallar")
	}
	if _, ok := ToNumber(true); ok {
		t.Fatal("bool debería fallar")
	}
}

func TestPatchAbsentVsPresent(t *testing.T) {
	// campo ausente => puntero nil => "conservar valor actual"
	var p BrandPatch
	if err := json.Unmarshal([]byte(`{"id":1}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Name != nil || p.Active != nil {
		t.Fatal("campos ausentes deberían quedar nil")
	}

	if err := json.Unmarshal([]byte(`{"id":"2","name":"Kia","is_active":"0"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if int(p.ID) != 2 {
		t.Fatalf("id = %d, want 2", int(p.ID))
	}
	if p.Name == nil || *p.Name != "Kia" {
		t.Fatalf("name = %v, want Kia", p.Name)
	}
	if p.Active == nil || bool(*p.Active) {
		t.Fatal(`is_active "0" debería coercionar a false`)
	}
}
