package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/knot-format/go-knot/parse"
)

type person struct {
	Name string
	Age  int
}

func TestPopulate(t *testing.T) {
	got, err := Populate[person](`{"Name": "Bob", "Age": 30}`)
	if err != nil {
		t.Fatal(err)
	}
	want := person{Name: "Bob", Age: 30}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("populate diff (-want +got):\n%s", d)
	}
}

func TestPopulatePartialOverlap(t *testing.T) {
	// one matching key is enough; extra keys are ignored
	got, err := Populate[person](`{"Age": 41, "Color": "red"}`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Age != 41 || got.Name != "" {
		t.Errorf("got %+v", got)
	}
}

func TestPopulateNoMatchingFields(t *testing.T) {
	inputs := []string{
		`{"Other": 1}`,
		`{}`,
		`[1, 2, 3]`,
		`"scalar"`,
	}
	for _, in := range inputs {
		_, err := Populate[person](in)
		if !errors.Is(err, ErrNoMatchingFields) {
			t.Errorf("%s: got %v, want ErrNoMatchingFields", in, err)
		}
		var perr *PopulateError
		if !errors.As(err, &perr) {
			t.Errorf("%s: error does not carry the target shape", in)
		} else if perr.Shape != "gomap.person" {
			t.Errorf("%s: shape %q", in, perr.Shape)
		}
	}
}

func TestPopulateMalformedInput(t *testing.T) {
	_, err := Populate[person](`{"Name": `)
	if !errors.Is(err, parse.ErrMalformedInput) {
		t.Errorf("got %v, want ErrMalformedInput", err)
	}
}

func TestPopulateNullLeavesDefault(t *testing.T) {
	got, err := Populate[person](`{"Name": null, "Age": 30}`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "" || got.Age != 30 {
		t.Errorf("got %+v", got)
	}
	// a lone null key still counts as an overlap
	got, err = Populate[person](`{"Name": null}`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "" {
		t.Errorf("got %+v", got)
	}
}

func TestPopulatePointerField(t *testing.T) {
	type form struct {
		Age *int
	}
	got, err := Populate[form](`{"Age": 30}`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Age == nil || *got.Age != 30 {
		t.Errorf("got %+v", got.Age)
	}
	got, err = Populate[form](`{"Age": null}`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Age != nil {
		t.Errorf("null should leave the pointer nil, got %v", *got.Age)
	}
}

func TestPopulateDegradesToZero(t *testing.T) {
	// mismatched scalar kinds fall back to the zero value, never error
	got, err := Populate[person](`{"Name": "Bob", "Age": "abc"}`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Age != 0 || got.Name != "Bob" {
		t.Errorf("got %+v", got)
	}
}

func TestPopulateNumericConversions(t *testing.T) {
	type nums struct {
		I   int
		I32 int32
		U   uint
		F32 float32
		F64 float64
		B   bool
	}
	got, err := Populate[nums](`{"I": 9000000000, "I32": -3, "U": 7, "F32": 1.5, "F64": 3.25, "B": true}`)
	if err != nil {
		t.Fatal(err)
	}
	want := nums{I: 9000000000, I32: -3, U: 7, F32: 1.5, F64: 3.25, B: true}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("populate diff (-want +got):\n%s", d)
	}
}

func TestPopulateNarrowFieldOverflow(t *testing.T) {
	// values that do not fit the field's width leave the zero value,
	// never a truncated one
	type narrow struct {
		Age  int8
		N    uint8
		Temp float32
	}
	got, err := Populate[narrow](`{"Age": 300, "N": 300, "Temp": 1e300}`)
	if err != nil {
		t.Fatal(err)
	}
	want := narrow{}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("populate diff (-want +got):\n%s", d)
	}
}

func TestPopulateLargeUnsigned(t *testing.T) {
	// unsigned fields take values above MaxInt64 from the canonical text
	type form struct {
		N uint64
	}
	got, err := Populate[form](`{"N": 10000000000000000000}`)
	if err != nil {
		t.Fatal(err)
	}
	if got.N != 10000000000000000000 {
		t.Errorf("got %d", got.N)
	}
}

func TestPopulateNegativeIntoUnsigned(t *testing.T) {
	type form struct {
		N uint
	}
	got, err := Populate[form](`{"N": -5}`)
	if err != nil {
		t.Fatal(err)
	}
	if got.N != 0 {
		t.Errorf("got %d, want 0", got.N)
	}
}

func TestPopulateSkipsContainersAndUnexported(t *testing.T) {
	type form struct {
		Name string
		Tags []string
		age  int
	}
	got, err := Populate[form](`{"Name": "x", "Tags": [1, 2], "age": 9}`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "x" || got.Tags != nil || got.age != 0 {
		t.Errorf("got %+v", got)
	}
}

func TestPopulateNonStructTarget(t *testing.T) {
	_, err := Populate[int](`{"a": 1}`)
	var perr *PopulateError
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want PopulateError", err)
	}
}
