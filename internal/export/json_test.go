package export

import (
	"encoding/json"
	"testing"

	"github.com/patrickprogramme/scriptcut/pkg/model"
)

func TestGenerateJSONRoundTrips(t *testing.T) {
	in := []model.Segment{
		{ID: 1, Text: "Hello world", Start: 0, End: 2.5, Speaker: "SPEAKER_00",
			SpeakerName: "Ana", Confidence: 0.97, Topic: "Intro",
			Words: []model.Word{
				{Word: "Hello", Start: 0, End: 1.1},
				{Word: "world", Start: 1.2, End: 2.5},
			}},
		{ID: 2, Text: "Bye", Start: 3, End: 4},
	}

	out, err := GenerateJSON(in)
	if err != nil {
		t.Fatal(err)
	}

	var back []model.Segment
	if err := json.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("export output must parse back: %v", err)
	}
	if len(back) != len(in) {
		t.Fatalf("round trip lost segments: %d != %d", len(back), len(in))
	}
	for i := range in {
		a, b := in[i], back[i]
		if a.ID != b.ID || a.Text != b.Text || a.Start != b.Start || a.End != b.End || a.Speaker != b.Speaker {
			t.Fatalf("segment %d changed across round trip:\n%+v\n%+v", a.ID, a, b)
		}
	}
	if len(back[0].Words) != 2 {
		t.Fatalf("word breakdown lost: %+v", back[0].Words)
	}
}

func TestGenerateJSONEmptyList(t *testing.T) {
	out, err := GenerateJSON(nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != "[]" {
		t.Fatalf(`empty export must be "[]", got %q`, out)
	}
}

func TestGenerateJSONIsIndented(t *testing.T) {
	out, err := GenerateJSON([]model.Segment{{ID: 1, Text: "x", Start: 0, End: 1}})
	if err != nil {
		t.Fatal(err)
	}
	// indentation deux espaces, lisible par un humain
	if out[0] != '[' || out[1] != '\n' {
		t.Fatalf("expected indented array, got %q", out)
	}
}
