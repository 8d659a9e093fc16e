package abc

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseVocabulary(t *testing.T) {
	vocab, err := ParseVocabulary("gym,spa,restaurant,bars")
	if err != nil {
		t.Fatalf("ParseVocabulary: %v", err)
	}
	if vocab.Len() != 5 {
		t.Errorf("Len() = %d, want 5", vocab.Len())
	}
	want := []string{ReservedAttribute, "gym", "spa", "restaurant", "bars"}
	if !reflect.DeepEqual(vocab.Names(), want) {
		t.Errorf("Names() = %v, want %v", vocab.Names(), want)
	}
	if got := vocab.PublicNames(); !reflect.DeepEqual(got, want[1:]) {
		t.Errorf("PublicNames() = %v, want %v", got, want[1:])
	}
}

func TestParseVocabularyErrors(t *testing.T) {
	tests := []struct {
		name string
		list string
		want error
	}{
		{"empty", "", ErrEmptyVocabulary},
		{"empty name", "gym,,bars", ErrEmptyVocabulary},
		{"duplicate", "gym,spa,gym", ErrDuplicateAttribute},
		{"reserved", "gym,secret_key", ErrReservedAttribute},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseVocabulary(test.list); !errors.Is(err, test.want) {
				t.Errorf("got %v, want %v", err, test.want)
			}
		})
	}
}

func TestVocabularyIndex(t *testing.T) {
	vocab, _ := ParseVocabulary("gym,spa")

	tests := []struct {
		name string
		want int
	}{
		{ReservedAttribute, 0},
		{"gym", 1},
		{"spa", 2},
		{"bars", -1},
	}
	for _, test := range tests {
		if got := vocab.Index(test.name); got != test.want {
			t.Errorf("Index(%q) = %d, want %d", test.name, got, test.want)
		}
	}
}

func TestVocabularyEqual(t *testing.T) {
	a, _ := ParseVocabulary("gym,spa")
	b, _ := ParseVocabulary("gym,spa")
	c, _ := ParseVocabulary("spa,gym")

	if !a.Equal(b) {
		t.Error("identical vocabularies not equal")
	}
	if a.Equal(c) {
		t.Error("reordered vocabulary considered equal")
	}
	if a.Equal(nil) {
		t.Error("nil vocabulary considered equal")
	}
}

func TestCheckAttributes(t *testing.T) {
	vocab, _ := ParseVocabulary("gym,spa,bars")

	if err := vocab.checkAttributes([]string{"gym", "bars"}); err != nil {
		t.Errorf("valid attributes rejected: %v", err)
	}
	if err := vocab.checkAttributes(nil); err != nil {
		t.Errorf("empty attribute set rejected: %v", err)
	}
	if err := vocab.checkAttributes([]string{"casino"}); !errors.Is(err, ErrUnknownAttribute) {
		t.Errorf("unknown attribute: got %v, want ErrUnknownAttribute", err)
	}
	if err := vocab.checkAttributes([]string{ReservedAttribute}); !errors.Is(err, ErrReservedAttribute) {
		t.Errorf("reserved attribute: got %v, want ErrReservedAttribute", err)
	}
}

func TestSplitAttributeList(t *testing.T) {
	tests := []struct {
		list string
		want []string
	}{
		{"", nil},
		{"gym", []string{"gym"}},
		{"gym,bars", []string{"gym", "bars"}},
		{"gym,gym,bars", []string{"gym", "bars"}},
		{"gym,,bars", []string{"gym", "bars"}},
	}

	for _, test := range tests {
		if got := SplitAttributeList(test.list); !reflect.DeepEqual(got, test.want) {
			t.Errorf("SplitAttributeList(%q) = %v, want %v", test.list, got, test.want)
		}
	}
}
