package cli

import (
	"reflect"
	"testing"
)

func TestParseIDs(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want []int
	}{
		{"single", []string{"7"}, []int{7}},
		{"range", []string{"3-5"}, []int{3, 4, 5}},
		{"mixed", []string{"1", "3-5", "1"}, []int{1, 3, 4, 5}},
		{"unordered merge", []string{"5-6", "1-2"}, []int{5, 6, 1, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseIDs(c.args)
			if err != nil {
				t.Fatalf("ParseIDs(%v): %v", c.args, err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("ParseIDs(%v) = %v, want %v", c.args, got, c.want)
			}
		})
	}
}

func TestParseIDsRejectsGarbage(t *testing.T) {
	for _, arg := range []string{"abc", "5-", "-5", "9-3"} {
		if _, err := ParseIDs([]string{arg}); err == nil {
			t.Fatalf("ParseIDs(%q) should have failed", arg)
		}
	}
}
