package vector

import (
	"fmt"
	"testing"
)

func TestVectorString(t *testing.T) {
	v := New[int]([3]int{1, 2, 3})
	if s := v.String(); s != "(1,2,3)" {
		t.Fatalf("unexpected tuple format %q", s)
	}
	if s := fmt.Sprint(v); s != "(1,2,3)" {
		t.Fatalf("fmt should use String, got %q", s)
	}
	if s := fmt.Sprintf("%#v", v); s != "Vector(1, 2, 3)" {
		t.Fatalf("unexpected debug format %q", s)
	}
}

func TestVectorDebugQuotesStrings(t *testing.T) {
	v := New[string]([2]string{"a", "b"})
	if s := v.GoString(); s != `Vector("a", "b")` {
		t.Fatalf("unexpected debug format %q", s)
	}
	if s := v.String(); s != "(a,b)" {
		t.Fatalf("unexpected tuple format %q", s)
	}
}

func TestEmptyAndSingleVectors(t *testing.T) {
	var e Vector[int, [0]int]
	if e.String() != "()" || e.GoString() != "Vector()" || e.Items() != nil {
		t.Fatalf("unexpected empty vector %q / %q", e.String(), e.GoString())
	}
	one := New[float64]([1]float64{0.5})
	if one.String() != "(0.5)" {
		t.Fatalf("unexpected single vector %q", one.String())
	}
}

func TestVectorItemsAndIteration(t *testing.T) {
	v := New[int]([4]int{4, 3, 2, 1})
	v.Items()[0] = 40
	if v.At(0) != 40 || v.Len() != 4 {
		t.Fatalf("Items must share storage, got %v", v)
	}
	sum := 0
	for i, x := range v.All() {
		sum += i * x
	}
	if sum != 0*40+1*3+2*2+3*1 {
		t.Fatalf("unexpected weighted sum %d", sum)
	}
	arr := v.Array()
	arr[1] = 99
	if v.At(1) != 3 {
		t.Fatalf("Array must return a copy")
	}
}
