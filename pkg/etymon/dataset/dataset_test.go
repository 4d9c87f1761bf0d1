package dataset

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func sample() *Dataset {
	return New([]Entry{
		{Word: "prestigious", Etymology: "From French 'prestigieux', from Latin 'praestigium' (illusion).", Notes: ""},
		{Word: "benevolent", Etymology: "From Latin 'bene' (well) + 'volens' (wishing).", Notes: "grade8"},
		{Word: "aquatic", Etymology: "From Latin 'aqua' (water).", Notes: "Grade8 "},
	})
}

func TestLookupCaseInsensitive(t *testing.T) {
	d := sample()

	e, ok := d.Lookup("Prestigious")
	if !ok {
		t.Fatal("Lookup(Prestigious) not found")
	}
	if e.Word != "prestigious" {
		t.Errorf("Lookup returned %q, want prestigious", e.Word)
	}

	if _, ok := d.Lookup("missing"); ok {
		t.Error("Lookup(missing) should not be found")
	}
}

func TestLookupLaterEntryWins(t *testing.T) {
	d := New([]Entry{
		{Word: "port", Etymology: "first"},
		{Word: "Port", Etymology: "second"},
	})

	e, ok := d.Lookup("port")
	if !ok || e.Etymology != "second" {
		t.Errorf("Lookup(port) = (%+v, %v), want the later entry", e, ok)
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2 (both rows kept)", d.Len())
	}
}

func TestNewDropsWordlessEntries(t *testing.T) {
	d := New([]Entry{
		{Word: "  ", Etymology: "ignored"},
		{Word: "kept", Etymology: "x"},
	})
	if d.Len() != 1 {
		t.Errorf("Len = %d, want 1", d.Len())
	}
}

func TestFilterByNote(t *testing.T) {
	d := sample()

	got := d.FilterByNote(" GRADE8 ")
	want := []string{"aquatic", "benevolent"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterByNote = %v, want %v", got, want)
	}

	if got := d.FilterByNote("grade9"); len(got) != 0 {
		t.Errorf("FilterByNote(grade9) = %v, want empty", got)
	}
}

func TestMergeAppend(t *testing.T) {
	a := sample()
	b := New([]Entry{{Word: "urban", Etymology: "From Latin 'urbs' (city)."}})

	merged := a.Merge(b, Append)
	if merged.Len() != a.Len()+b.Len() {
		t.Errorf("merged length = %d, want %d", merged.Len(), a.Len()+b.Len())
	}
	if _, ok := merged.Lookup("urban"); !ok {
		t.Error("merged dataset missing appended entry")
	}
	if _, ok := merged.Lookup("prestigious"); !ok {
		t.Error("merged dataset missing original entry")
	}
}

func TestMergeReplace(t *testing.T) {
	a := sample()
	b := New([]Entry{{Word: "urban", Etymology: "From Latin 'urbs' (city)."}})

	merged := a.Merge(b, Replace)
	if !reflect.DeepEqual(merged.Entries(), b.Entries()) {
		t.Errorf("Replace merge = %v, want %v", merged.Entries(), b.Entries())
	}
}

func TestLoadMissingFile(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("Len = %d, want 0", d.Len())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.csv")
	d := New([]Entry{
		{Word: "prestigious", Etymology: `From French "prestigieux", with a comma, here.`, Notes: "grade8"},
		{Word: "terrain", Etymology: "From Latin 'terra'.", Notes: ""},
	})

	if err := Save(path, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded.Entries(), d.Entries()) {
		t.Errorf("round trip mismatch:\n got %v\nwant %v", loaded.Entries(), d.Entries())
	}
}

func TestReadSkipsWordlessAndMapsColumnsByName(t *testing.T) {
	csvText := strings.Join([]string{
		"notes,word,etymology",
		"grade8,benevolent,Latin bene + volens",
		",,skipped row has no word",
		"  , aquatic , Latin aqua ",
	}, "\n")

	d, err := Read(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len = %d, want 2", d.Len())
	}

	e, ok := d.Lookup("aquatic")
	if !ok {
		t.Fatal("Lookup(aquatic) not found")
	}
	if e.Etymology != "Latin aqua" || e.Notes != "" {
		t.Errorf("fields not trimmed/mapped: %+v", e)
	}
}

func TestReadEmpty(t *testing.T) {
	d, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read empty: %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("Len = %d, want 0", d.Len())
	}
}
