package model

import "testing"

func TestSpeakerLabelFallback(t *testing.T) {
	s := Segment{ID: 1, Text: "Hi"}
	if got := s.SpeakerLabel(); got != SpeakerUnknown {
		t.Fatalf("expected %q for missing speaker, got %q", SpeakerUnknown, got)
	}
	s.Speaker = "SPEAKER_01"
	if got := s.SpeakerLabel(); got != "SPEAKER_01" {
		t.Fatalf("expected SPEAKER_01, got %q", got)
	}
}

func TestWordSpeakerOverride(t *testing.T) {
	s := Segment{ID: 1, Speaker: "SPEAKER_00"}
	w := Word{Word: "hey", Start: 1.0, End: 1.2}
	if got := s.WordSpeaker(w); got != "SPEAKER_00" {
		t.Fatalf("expected parent speaker, got %q", got)
	}
	// override ponctuel (cross-talk)
	w.Speaker = "SPEAKER_01"
	if got := s.WordSpeaker(w); got != "SPEAKER_01" {
		t.Fatalf("expected word speaker override, got %q", got)
	}
}

func TestParseFormatAndFilenames(t *testing.T) {
	cases := map[string]struct {
		format   Format
		filename string
		mime     string
	}{
		"xml":  {FormatXML, "project.fcpxml", "application/xml"},
		"srt":  {FormatSRT, "subtitles.srt", "text/plain"},
		"json": {FormatJSON, "transcript.json", "application/json"},
	}
	for in, want := range cases {
		f, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", in, err)
		}
		if f != want.format || f.Filename() != want.filename || f.MIME() != want.mime {
			t.Fatalf("ParseFormat(%q) = %v (%s, %s)", in, f, f.Filename(), f.MIME())
		}
	}

	if _, err := ParseFormat("docx"); err == nil {
		t.Fatal("expected error for unknown format")
	}

	// le stub video ne produit pas de fichier
	if FormatVideo.IsFile() {
		t.Fatal("video format must not be a file export")
	}
}

func TestParseSortFieldTimeAlias(t *testing.T) {
	f, err := ParseSortField("time")
	if err != nil || f != SortByStart {
		t.Fatalf("expected time alias to map to start, got %v (%v)", f, err)
	}
	if !SortByEnd.IsNumeric() || SortBySpeaker.IsNumeric() {
		t.Fatal("numeric classification wrong")
	}
}

func TestWordRefIdentity(t *testing.T) {
	s := Segment{ID: 3}
	w := Word{Word: "go", Start: 24.1, End: 24.4}
	ref := s.Ref(w)
	if ref != (WordRef{SegmentID: 3, Start: 24.1}) {
		t.Fatalf("unexpected ref: %+v", ref)
	}
	// deux refs construites indépendamment doivent être égales (clé de map)
	if ref != (WordRef{3, 24.1}) {
		t.Fatal("composite key must be comparable by value")
	}
}
